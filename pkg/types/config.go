// Configuration for the OctoFit dashboard.
package types

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Config holds the process-wide settings consumed by the views and front ends.
type Config struct {
	APIBaseURL     string        `json:"api_base_url" yaml:"api_base_url" mapstructure:"api_base_url"`
	CodespaceName  string        `json:"codespace_name" yaml:"codespace_name" mapstructure:"codespace_name"`
	Locale         string        `json:"locale" yaml:"locale" mapstructure:"locale"`
	ListenAddr     string        `json:"listen_addr" yaml:"listen_addr" mapstructure:"listen_addr"`
	RequestTimeout time.Duration `json:"request_timeout" yaml:"request_timeout" mapstructure:"request_timeout"`
	RankBy         string        `json:"rank_by" yaml:"rank_by" mapstructure:"rank_by"`
	DataDir        string        `json:"data_dir" yaml:"data_dir" mapstructure:"data_dir"`
}

// Leaderboard ranking modes.
const (
	RankByOrder = "order"
	RankByScore = "score"
)

// Defaults applied when a setting is absent.
const (
	DefaultLocale       = "en-US"
	DefaultListenAddr   = ":3000"
	DefaultLocalBaseURL = "http://localhost:8000"
)

// Config validation errors.
var (
	ErrBaseURLInvalid = errors.New("api base url must be an absolute http(s) url")
	ErrLocaleInvalid  = errors.New("invalid locale tag")
	ErrRankByUnknown  = errors.New("unknown leaderboard rank mode")
	ErrTimeoutInvalid = errors.New("request timeout must not be negative")
)

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure. Empty values are valid and take defaults.
func (c Config) Validate() error {
	if c.APIBaseURL != "" {
		u, err := url.Parse(c.APIBaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return ErrBaseURLInvalid
		}
	}
	if c.Locale != "" {
		if _, err := language.Parse(c.Locale); err != nil {
			return ErrLocaleInvalid
		}
	}
	switch c.RankBy {
	case "", RankByOrder, RankByScore:
	default:
		return ErrRankByUnknown
	}
	if c.RequestTimeout < 0 {
		return ErrTimeoutInvalid
	}
	return nil
}

// BaseURL returns the API host prefix. An explicit api_base_url wins; a
// codespace name yields the forwarded port-8000 host; otherwise the local
// default is used.
func (c Config) BaseURL() string {
	if c.APIBaseURL != "" {
		return strings.TrimRight(c.APIBaseURL, "/")
	}
	if name := strings.TrimSpace(c.CodespaceName); name != "" {
		return "https://" + name + "-8000.app.github.dev"
	}
	return DefaultLocalBaseURL
}

// LocaleOrDefault returns the configured locale or DefaultLocale.
func (c Config) LocaleOrDefault() string {
	if c.Locale == "" {
		return DefaultLocale
	}
	return c.Locale
}

// ListenAddrOrDefault returns the configured listen address or DefaultListenAddr.
func (c Config) ListenAddrOrDefault() string {
	if c.ListenAddr == "" {
		return DefaultListenAddr
	}
	return c.ListenAddr
}
