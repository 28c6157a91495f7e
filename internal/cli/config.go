package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/octofit/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	envPrefix = "OCTOFIT"

	cfgKeyAPIBaseURL     = "api_base_url"
	cfgKeyCodespaceName  = "codespace_name"
	cfgKeyLocale         = "locale"
	cfgKeyListenAddr     = "listen_addr"
	cfgKeyRequestTimeout = "request_timeout"
	cfgKeyRankBy         = "leaderboard.rank_by"
	cfgKeyDataDir        = "data_dir"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# octofit configuration
# Every key can be overridden by an OCTOFIT_ environment variable,
# e.g. OCTOFIT_API_BASE_URL or OCTOFIT_LEADERBOARD_RANK_BY.

# API host. When empty, codespace_name (or $CODESPACE_NAME) selects
# https://<name>-8000.app.github.dev, else http://localhost:8000.
# api_base_url:
# codespace_name:

# BCP 47 tag used for dates and counts.
locale: en-US

# Address for octofit serve.
listen_addr: ":3000"

# Per-request timeout; 0 waits as long as the API takes.
request_timeout: 0s

leaderboard:
  # order keeps the API's order; score sorts by score, highest first.
  rank_by: order

# Export directory (optional; overridable by --data-dir flag)
# data_dir:
`

// loadConfig reads config.yaml from configDir using Viper. It creates the
// directory and a default config.yaml on first run. A missing config.yaml is
// not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyLocale, types.DefaultLocale)
	v.SetDefault(cfgKeyListenAddr, types.DefaultListenAddr)
	v.SetDefault(cfgKeyRequestTimeout, "0s")
	v.SetDefault(cfgKeyRankBy, types.RankByOrder)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Codespaces export CODESPACE_NAME on their own.
	if err := v.BindEnv(cfgKeyCodespaceName, envPrefix+"_CODESPACE_NAME", "CODESPACE_NAME"); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// configFromViper builds and validates a Config from the loaded settings.
func configFromViper(v *viper.Viper) (types.Config, error) {
	timeout, err := cast.ToDurationE(v.Get(cfgKeyRequestTimeout))
	if err != nil {
		return types.Config{}, fmt.Errorf("%w: %v", types.ErrTimeoutInvalid, err)
	}
	cfg := types.Config{
		APIBaseURL:     strings.TrimSpace(v.GetString(cfgKeyAPIBaseURL)),
		CodespaceName:  strings.TrimSpace(v.GetString(cfgKeyCodespaceName)),
		Locale:         v.GetString(cfgKeyLocale),
		ListenAddr:     v.GetString(cfgKeyListenAddr),
		RequestTimeout: timeout,
		RankBy:         strings.ToLower(v.GetString(cfgKeyRankBy)),
		DataDir:        v.GetString(cfgKeyDataDir),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
