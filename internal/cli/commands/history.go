package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/onomast-labs/onomast/internal/cli/output"
	"github.com/onomast-labs/onomast/internal/state"
)

// HistoryOptions holds options for the history command.
type HistoryOptions struct {
	RunID string
	Pool  string
	Limit int
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand() *cobra.Command {
	opts := &HistoryOptions{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past generation runs",
		Long: `List recorded generation runs from the ledger.

With --run the names minted by that run are listed instead; with
--pool the most recent names for a pool across all runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			if cmdCtx.Store == nil {
				return fmt.Errorf("ledger is disabled (no_ledger is set)")
			}
			return runHistory(cmdCtx, opts)
		},
	}

	cmd.Flags().StringVar(&opts.RunID, "run", "", "List the names minted by a run")
	cmd.Flags().StringVar(&opts.Pool, "pool", "", "List recent names for a pool")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 20, "Maximum entries to show")

	return cmd
}

func runHistory(cmdCtx *CommandContext, opts *HistoryOptions) error {
	r := cmdCtx.Renderer

	switch {
	case opts.RunID != "":
		names, err := cmdCtx.Store.ListNames(opts.RunID)
		if err != nil {
			return err
		}
		return renderNameRecords(r, names)

	case opts.Pool != "":
		names, err := cmdCtx.Store.ListNamesByPool(opts.Pool, opts.Limit)
		if err != nil {
			return err
		}
		return renderNameRecords(r, names)

	default:
		runs, err := cmdCtx.Store.ListRuns(opts.Limit)
		if err != nil {
			return err
		}
		return renderRuns(r, runs)
	}
}

func renderRuns(r *output.Renderer, runs []*state.Run) error {
	if r.EffectiveMode() == output.ModeJSON {
		enc := json.NewEncoder(r.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		r.Println("No runs recorded")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.AppendHeader(table.Row{"ID", "Language", "Seed", "Status", "Started", "Duration"})
	for _, run := range runs {
		duration := ""
		if run.CompletedAt != nil {
			duration = run.CompletedAt.Sub(run.StartedAt).Round(time.Millisecond).String()
		}
		t.AppendRow(table.Row{
			shortID(run.ID), run.Language, run.Seed, run.Status,
			run.StartedAt.Format(time.RFC3339), duration,
		})
	}
	renderTable(r, t)
	return nil
}

func renderNameRecords(r *output.Renderer, names []*state.NameRecord) error {
	if r.EffectiveMode() == output.ModeJSON {
		enc := json.NewEncoder(r.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(names)
	}

	if len(names) == 0 {
		r.Println("No names recorded")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.AppendHeader(table.Row{"Name", "Pool", "Run", "Created"})
	for _, rec := range names {
		t.AppendRow(table.Row{rec.Name, poolLabel(rec.Pool), shortID(rec.RunID), rec.CreatedAt.Format(time.RFC3339)})
	}
	renderTable(r, t)
	return nil
}

func renderTable(r *output.Renderer, t table.Writer) {
	if r.EffectiveMode() == output.ModeMarkdown {
		t.RenderMarkdown()
		return
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
