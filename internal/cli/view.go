package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/octofit/internal/render"
	"github.com/mesh-intelligence/octofit/internal/views"
	"github.com/mesh-intelligence/octofit/pkg/types"
)

func newViewCmd(a *app, v views.View) *cobra.Command {
	return &cobra.Command{
		Use:   v.Name,
		Short: fmt.Sprintf("Show %s from the OctoFit API", v.Label),
		Long: fmt.Sprintf(`Fetch /api/%s/ once and render it.

Example:
  octofit %s
  octofit %s --json`, v.Path, v.Name, v.Name),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runView(cmd, v)
		},
	}
}

// runView mounts v, waits for its fetch and prints the resulting panel. A
// view that ends in the error phase exits with exitSysError.
func (a *app) runView(cmd *cobra.Command, v views.View) error {
	ctx := cmd.Context()
	m := v.New(a.client, a.env)
	m.Mount(ctx)
	defer m.Unmount()

	stderr := cmd.ErrOrStderr()
	if isTerminal(stderr) {
		fmt.Fprintf(stderr, "Loading %s...\r", v.Name)
	}
	panel := views.Load(ctx, m)
	if isTerminal(stderr) {
		fmt.Fprint(stderr, "\033[2K\r")
	}

	out := cmd.OutOrStdout()
	msg, failed := types.FailureMessage(panel.Phase)
	if a.flags.jsonMode {
		var payload any = m.Rows()
		if failed {
			payload = map[string]string{"view": v.Name, "phase": panel.Phase.String(), "error": msg}
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return sysError(fmt.Errorf("marshal %s: %w", v.Name, err))
		}
		fmt.Fprintln(out, string(data))
	} else if err := render.WriteText(out, panel); err != nil {
		return sysError(fmt.Errorf("render %s: %w", v.Name, err))
	}
	if failed {
		return &exitError{code: exitSysError, err: fmt.Errorf("%s: %s", v.Name, msg), silent: true}
	}
	if types.IsLoading(panel.Phase) {
		return sysError(fmt.Errorf("%s: %w", v.Name, ctx.Err()))
	}
	return nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
