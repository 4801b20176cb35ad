package commands

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/onomast-labs/onomast/internal/state"
	"github.com/onomast-labs/onomast/pkg/namegen"
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive name generation",
		Long: `Start an interactive session against the configured language.

Each line names a pool and mints one name from it; an empty pool uses
the generic pool. Type .help for commands, .quit to exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			return runREPL(cmd, cmdCtx)
		},
	}
}

func runREPL(cmd *cobra.Command, cmdCtx *CommandContext) error {
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
		defer func() { _ = cmdCtx.Store.CompleteRun(run.ID, state.RunStatusCompleted, "") }()
	}

	// Setup history file (project-local)
	historyFile := filepath.Join(filepath.Dir(cmdCtx.Cfg.StatePath), "repl_history")
	if cmdCtx.Cfg.StatePath == ":memory:" {
		historyFile = ""
	}

	completer := readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".spec"),
		readline.PcItem(".pools"),
		readline.PcItem(".words", readline.PcItemDynamic(func(string) []string { return lang.Pools() })),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
		readline.PcItemDynamic(func(string) []string { return lang.Pools() }),
	)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "onomast> ",
		HistoryFile:     historyFile,
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "onomast REPL (language: %s)\n", cmdCtx.Cfg.LanguagePath)
	_, _ = fmt.Fprintln(out, "Enter a pool name to mint a name from it, .help for commands")
	_, _ = fmt.Fprintln(out)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)

		if strings.HasPrefix(line, ".") {
			if quit := handleDotCommand(cmd, lang, line); quit {
				break
			}
			continue
		}

		name, err := lang.GenerateName(line)
		if err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			continue
		}
		_, _ = fmt.Fprintln(out, name)

		if run != nil {
			if _, err := cmdCtx.Store.RecordName(run.ID, line, name); err != nil {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			}
		}
	}

	return nil
}

// handleDotCommand executes a REPL dot-command and reports whether the
// session should end.
func handleDotCommand(cmd *cobra.Command, lang *namegen.Language, line string) bool {
	out := cmd.OutOrStdout()
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(out)

	case ".spec":
		spec := lang.Spec()
		_, _ = fmt.Fprintf(out, "pattern: %s\n", spec.Pattern)
		_, _ = fmt.Fprintf(out, "syllables: %d-%d\n", spec.MinSyllables, spec.MaxSyllables)
		for role, set := range spec.Phonemes {
			_, _ = fmt.Fprintf(out, "phonemes %s: %s\n", role, set.String())
		}

	case ".pools":
		for _, pool := range lang.Pools() {
			_, _ = fmt.Fprintf(out, "%s  (%d morphemes, %d words, %d names)\n",
				poolLabel(pool), len(lang.Morphemes(pool)), len(lang.Words(pool)), len(lang.Names(pool)))
		}

	case ".words":
		pool := ""
		if len(parts) > 1 {
			pool = parts[1]
		}
		for _, w := range lang.Words(pool) {
			_, _ = fmt.Fprintln(out, w)
		}

	default:
		_, _ = fmt.Fprintf(out, "Unknown command %s, type .help\n", command)
	}
	return false
}

func printREPLHelp(out io.Writer) {
	_, _ = fmt.Fprintln(out, "Commands:")
	_, _ = fmt.Fprintln(out, "  <pool>          Mint a name from the pool (empty line: generic pool)")
	_, _ = fmt.Fprintln(out, "  .spec           Show the language spec")
	_, _ = fmt.Fprintln(out, "  .pools          List pools and their vocabulary sizes")
	_, _ = fmt.Fprintln(out, "  .words [pool]   List the words stored for a pool")
	_, _ = fmt.Fprintln(out, "  .quit           Exit")
}
