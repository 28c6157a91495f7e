package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mesh-intelligence/octofit/internal/views"
	"github.com/mesh-intelligence/octofit/pkg/types"
)

// summary is one line of the overview.
type summary struct {
	View  string `json:"view"`
	Phase string `json:"phase"`
	Count int    `json:"count"`
	Error string `json:"error,omitempty"`
}

func newOverviewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Fetch every view at once and summarize each",
		Long: `Overview mounts all five views concurrently and prints one line per view
with its final phase and record count. One view failing does not affect the
others; the command exits with status 2 only when every view failed.`,
		Args: cobra.NoArgs,
		RunE: a.runOverview,
	}
}

func (a *app) runOverview(cmd *cobra.Command, args []string) error {
	all := views.All()
	results := make([]summary, len(all))

	// A view ending in the error phase is a result, not a group error; only
	// a context that ends before every fetch completes fails the group.
	g, ctx := errgroup.WithContext(cmd.Context())
	for i, v := range all {
		g.Go(func() error {
			m := v.New(a.client, a.env)
			defer m.Unmount()
			p := views.Load(ctx, m)
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("%s: %w", v.Name, err)
			}
			s := summary{View: v.Name, Phase: p.Phase.String(), Count: p.Count()}
			if msg, failed := types.FailureMessage(p.Phase); failed {
				s.Error = msg
			}
			results[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return sysError(fmt.Errorf("overview: %w", err))
	}

	out := cmd.OutOrStdout()
	if a.flags.jsonMode {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return sysError(fmt.Errorf("marshal overview: %w", err))
		}
		fmt.Fprintln(out, string(data))
	} else {
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "VIEW\tSTATUS\tDETAIL")
		fmt.Fprintln(w, "----\t------\t------")
		for _, s := range results {
			detail := a.env.Printer.Sprintf("%d record(s)", s.Count)
			if s.Error != "" {
				detail = s.Error
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", s.View, s.Phase, detail)
		}
		if err := w.Flush(); err != nil {
			return sysError(err)
		}
	}

	for _, s := range results {
		if s.Error == "" {
			return nil
		}
	}
	return &exitError{code: exitSysError, err: errors.New("every view failed to load"), silent: a.flags.jsonMode}
}
