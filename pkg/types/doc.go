// Package types defines the entity, phase, configuration and error types
// shared by the OctoFit dashboard: the list views, the API client and both
// front ends (terminal and web).
package types
