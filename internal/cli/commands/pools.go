package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/onomast-labs/onomast/internal/cli/output"
	"github.com/onomast-labs/onomast/internal/state"
	"github.com/onomast-labs/onomast/pkg/namegen"
)

// PoolsOptions holds options for the pools command.
type PoolsOptions struct {
	Count int
}

// NewPoolsCommand creates the pools command.
func NewPoolsCommand() *cobra.Command {
	opts := &PoolsOptions{}

	cmd := &cobra.Command{
		Use:   "pools [pool...]",
		Short: "Generate names for several pools at once",
		Long: `Generate a batch of names for each given pool and show the resulting
vocabulary. Without arguments the "city" and "land" pools are used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			pools := args
			if len(pools) == 0 {
				pools = []string{"city", "land"}
			}
			return runPools(cmdCtx, pools, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Count, "count", "n", 5, "Names to generate per pool")

	return cmd
}

type poolResult struct {
	Pool      string   `json:"pool"`
	Names     []string `json:"names"`
	Morphemes int      `json:"morphemes"`
	Words     int      `json:"words"`
}

func runPools(cmdCtx *CommandContext, pools []string, opts *PoolsOptions) error {
	if opts.Count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", opts.Count)
	}

	lang, seed, err := loadLanguage(cmdCtx.Cfg)
	if err != nil {
		return err
	}

	var run *state.Run
	if cmdCtx.Store != nil {
		run, err = cmdCtx.Store.BeginRun(cmdCtx.Cfg.LanguagePath, seed)
		if err != nil {
			return err
		}
	}

	results := make([]poolResult, 0, len(pools))
	for _, pool := range pools {
		names := make([]string, 0, opts.Count)
		for i := 0; i < opts.Count; i++ {
			name, err := lang.GenerateName(pool)
			if err != nil {
				if run != nil {
					_ = cmdCtx.Store.CompleteRun(run.ID, state.RunStatusFailed, err.Error())
				}
				return fmt.Errorf("pool %q: %w", pool, err)
			}
			names = append(names, name)

			if run != nil {
				if _, err := cmdCtx.Store.RecordName(run.ID, pool, name); err != nil {
					return err
				}
			}
		}
		results = append(results, poolResult{
			Pool:      poolLabel(pool),
			Names:     names,
			Morphemes: len(lang.Morphemes(pool)),
			Words:     len(lang.Words(pool)),
		})
	}

	if run != nil {
		if err := cmdCtx.Store.CompleteRun(run.ID, state.RunStatusCompleted, ""); err != nil {
			return err
		}
	}

	return renderPools(cmdCtx.Renderer, results)
}

func poolLabel(pool string) string {
	if pool == namegen.GenericPool {
		return "(generic)"
	}
	return pool
}

func renderPools(r *output.Renderer, results []poolResult) error {
	if r.EffectiveMode() == output.ModeJSON {
		enc := json.NewEncoder(r.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.AppendHeader(table.Row{"Pool", "Names", "Morphemes", "Words"})
	for _, res := range results {
		t.AppendRow(table.Row{res.Pool, strings.Join(res.Names, "\n"), res.Morphemes, res.Words})
	}
	renderTable(r, t)
	return nil
}
