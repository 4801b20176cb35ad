package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/onomast-labs/onomast/internal/cli/output"
	"github.com/onomast-labs/onomast/internal/state"
)

// GenerateOptions holds options for the generate command.
type GenerateOptions struct {
	Count int
	Kind  string
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand() *cobra.Command {
	opts := &GenerateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [pool]",
		Short: "Generate names from the configured language",
		Long: `Generate names, words or syllables from the configured language.

The optional pool argument scopes names to a vocabulary pool ("city",
"land", ...). Without it the generic pool is used. Generated names are
recorded in the ledger unless --no-ledger is set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			pool := cmdCtx.Cfg.Pool
			if len(args) > 0 {
				pool = args[0]
			}
			return runGenerate(cmdCtx, pool, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Count, "count", "n", 1, "Number of items to generate")
	cmd.Flags().StringVarP(&opts.Kind, "kind", "k", "name", "What to generate (name|word|syllable)")

	_ = cmd.RegisterFlagCompletionFunc("kind", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"name", "word", "syllable"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runGenerate(cmdCtx *CommandContext, pool string, opts *GenerateOptions) error {
	if opts.Count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", opts.Count)
	}

	var generate func(string) (string, error)
	lang, seed, err := loadLanguage(cmdCtx.Cfg)
	if err != nil {
		return err
	}

	recordable := false
	switch opts.Kind {
	case "name":
		generate = lang.GenerateName
		recordable = true
	case "word":
		generate = lang.GenerateWord
	case "syllable":
		generate = func(string) (string, error) { return lang.GenerateSyllable() }
	default:
		return fmt.Errorf("unknown kind %q (want name, word or syllable)", opts.Kind)
	}

	var run *state.Run
	if recordable && cmdCtx.Store != nil {
		run, err = cmdCtx.Store.BeginRun(cmdCtx.Cfg.LanguagePath, seed)
		if err != nil {
			return err
		}
	}

	items := make([]string, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		item, err := generate(pool)
		if err != nil {
			if run != nil {
				_ = cmdCtx.Store.CompleteRun(run.ID, state.RunStatusFailed, err.Error())
			}
			return fmt.Errorf("generation failed after %d items: %w", i, err)
		}
		items = append(items, item)

		if run != nil {
			if _, err := cmdCtx.Store.RecordName(run.ID, pool, item); err != nil {
				return err
			}
		}
	}

	if run != nil {
		if err := cmdCtx.Store.CompleteRun(run.ID, state.RunStatusCompleted, ""); err != nil {
			return err
		}
	}

	return renderGenerated(cmdCtx.Renderer, pool, opts.Kind, items, seed)
}

type generatedOutput struct {
	Pool  string   `json:"pool"`
	Kind  string   `json:"kind"`
	Seed  uint64   `json:"seed"`
	Items []string `json:"items"`
}

func renderGenerated(r *output.Renderer, pool, kind string, items []string, seed uint64) error {
	if r.EffectiveMode() == output.ModeJSON {
		enc := json.NewEncoder(r.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(generatedOutput{Pool: pool, Kind: kind, Seed: seed, Items: items})
	}

	styles := r.Styles()
	for _, item := range items {
		r.Println(styles.Name.Render(item))
	}
	return nil
}
