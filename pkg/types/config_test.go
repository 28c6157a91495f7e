package types

import (
	"errors"
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "zero config is valid",
			config:  Config{},
			wantErr: nil,
		},
		{
			name:    "explicit base url",
			config:  Config{APIBaseURL: "http://127.0.0.1:8000"},
			wantErr: nil,
		},
		{
			name:    "relative base url returns ErrBaseURLInvalid",
			config:  Config{APIBaseURL: "/api"},
			wantErr: ErrBaseURLInvalid,
		},
		{
			name:    "non-http scheme returns ErrBaseURLInvalid",
			config:  Config{APIBaseURL: "ftp://example.com"},
			wantErr: ErrBaseURLInvalid,
		},
		{
			name:    "malformed locale returns ErrLocaleInvalid",
			config:  Config{Locale: "not a locale!"},
			wantErr: ErrLocaleInvalid,
		},
		{
			name:    "score ranking is valid",
			config:  Config{RankBy: RankByScore, Locale: "en-GB"},
			wantErr: nil,
		},
		{
			name:    "unknown rank mode returns ErrRankByUnknown",
			config:  Config{RankBy: "points"},
			wantErr: ErrRankByUnknown,
		},
		{
			name:    "negative timeout returns ErrTimeoutInvalid",
			config:  Config{RequestTimeout: -time.Second},
			wantErr: ErrTimeoutInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfigBaseURL(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		want   string
	}{
		{"local default", Config{}, DefaultLocalBaseURL},
		{"codespace host", Config{CodespaceName: "fuzzy-train"}, "https://fuzzy-train-8000.app.github.dev"},
		{"explicit url wins and loses trailing slash", Config{APIBaseURL: "http://api.test/", CodespaceName: "x"}, "http://api.test"},
		{"blank codespace falls back", Config{CodespaceName: "  "}, DefaultLocalBaseURL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.BaseURL(); got != tt.want {
				t.Fatalf("BaseURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	var c Config
	if c.LocaleOrDefault() != DefaultLocale {
		t.Errorf("LocaleOrDefault() = %q", c.LocaleOrDefault())
	}
	if c.ListenAddrOrDefault() != DefaultListenAddr {
		t.Errorf("ListenAddrOrDefault() = %q", c.ListenAddrOrDefault())
	}
}
