// Package web serves the dashboard: a navigation shell, the home page and
// one streamed page per view.
package web

import (
	"net/http"
	"time"
)

// ServerConfig contains tunables for the HTTP server.
type ServerConfig struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DefaultServerConfig returns the timeouts used by octofit serve. There is no
// write timeout: a view page stays open until its fetch completes.
func DefaultServerConfig(addr string) ServerConfig {
	return ServerConfig{
		Address:     addr,
		ReadTimeout: 5 * time.Second,
		IdleTimeout: 60 * time.Second,
	}
}

// NewServer creates *http.Server with provided handler.
func NewServer(cfg ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Address,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}
