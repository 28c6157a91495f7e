package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/octofit/pkg/types"
)

// effectiveConfig is what the config command prints: the settings in the
// shape of config.yaml plus the values derived from them.
type effectiveConfig struct {
	ConfigFile     string         `json:"config_file" yaml:"config_file"`
	APIBaseURL     string         `json:"api_base_url" yaml:"api_base_url"`
	CodespaceName  string         `json:"codespace_name,omitempty" yaml:"codespace_name,omitempty"`
	Locale         string         `json:"locale" yaml:"locale"`
	ListenAddr     string         `json:"listen_addr" yaml:"listen_addr"`
	RequestTimeout string         `json:"request_timeout" yaml:"request_timeout"`
	Leaderboard    leaderboardCfg `json:"leaderboard" yaml:"leaderboard"`
	DataDir        string         `json:"data_dir" yaml:"data_dir"`
}

type leaderboardCfg struct {
	RankBy string `json:"rank_by" yaml:"rank_by"`
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Config prints the settings octofit runs with after config.yaml, OCTOFIT_
environment variables and flags are applied. api_base_url is the resolved
API host.`,
		Args: cobra.NoArgs,
		RunE: a.runConfig,
	}
}

func (a *app) runConfig(cmd *cobra.Command, args []string) error {
	dataDir, err := a.resolveDataDir()
	if err != nil {
		return userError(fmt.Errorf("resolve data dir: %w", err))
	}
	rankBy := a.cfg.RankBy
	if rankBy == "" {
		rankBy = types.RankByOrder
	}
	eff := effectiveConfig{
		ConfigFile:     filepath.Join(a.configDir, configFileExt),
		APIBaseURL:     a.cfg.BaseURL(),
		CodespaceName:  a.cfg.CodespaceName,
		Locale:         a.cfg.LocaleOrDefault(),
		ListenAddr:     a.cfg.ListenAddrOrDefault(),
		RequestTimeout: a.cfg.RequestTimeout.String(),
		Leaderboard:    leaderboardCfg{RankBy: rankBy},
		DataDir:        dataDir,
	}

	out := cmd.OutOrStdout()
	if a.flags.jsonMode {
		data, err := json.MarshalIndent(eff, "", "  ")
		if err != nil {
			return sysError(fmt.Errorf("marshal config: %w", err))
		}
		fmt.Fprintln(out, string(data))
		return nil
	}
	data, err := yaml.Marshal(&eff)
	if err != nil {
		return sysError(fmt.Errorf("marshal config: %w", err))
	}
	_, err = out.Write(data)
	return err
}
