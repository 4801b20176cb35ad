package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/onomast-labs/onomast/internal/ui"
	"github.com/onomast-labs/onomast/pkg/core"
	"github.com/onomast-labs/onomast/pkg/namegen"
	"github.com/onomast-labs/onomast/pkg/phonology"
)

// BuildOptions holds options for the build command.
type BuildOptions struct {
	OutputPath  string
	Interactive bool
}

// NewBuildCommand creates the build command.
func NewBuildCommand() *cobra.Command {
	opts := &BuildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a new language spec",
		Long: `Build a language spec and write it to a YAML file.

By default the spec is assembled randomly from the phonology
inventories, weighted toward the more common choices. With
--interactive every inventory is picked from a prompt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContextWithoutStore(cmd)

			path := opts.OutputPath
			if path == "" {
				path = cmdCtx.Cfg.LanguagePath
			}

			rng, seed := newRand(cmdCtx.Cfg)
			builder := namegen.NewBuilder(rng)

			var spec core.Spec
			var err error
			if opts.Interactive {
				spec, err = buildInteractive(builder)
			} else {
				spec = builder.Random()
			}
			if err != nil {
				return err
			}

			if err := namegen.SaveSpec(path, spec); err != nil {
				return err
			}

			r := cmdCtx.Renderer
			r.Header(1, "Language built")
			r.KeyValue("file", path)
			r.KeyValue("pattern", string(spec.Pattern))
			r.KeyValue("syllables", fmt.Sprintf("%d-%d", spec.MinSyllables, spec.MaxSyllables))
			if !opts.Interactive {
				r.KeyValue("seed", strconv.FormatUint(seed, 10))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.OutputPath, "output-file", "f", "", "Where to write the spec (default: configured language path)")
	cmd.Flags().BoolVarP(&opts.Interactive, "interactive", "i", false, "Pick every inventory interactively")

	return cmd
}

func buildInteractive(builder *namegen.Builder) (core.Spec, error) {
	var sel namegen.Selections
	var err error

	patterns := make([]string, len(phonology.SyllablePatterns))
	for i, p := range phonology.SyllablePatterns {
		patterns[i] = string(p)
	}

	prompts := []struct {
		title   string
		options []string
		target  *int
	}{
		{"Syllable pattern", patterns, &sel.Pattern},
		{"Consonants", phonology.ConsonantSets, &sel.Consonants},
		{"Vowels", phonology.VowelSets, &sel.Vowels},
		{"Sibilants", phonology.SibilantSets, &sel.Sibilants},
		{"Finals", phonology.FinalSets, &sel.Finals},
		{"Liquids", phonology.LiquidSets, &sel.Liquids},
		{"Consonant orthography", phonology.ConsonantOrthographyNames, &sel.ConsonantStyle},
		{"Vowel orthography", phonology.VowelOrthographyNames, &sel.VowelStyle},
		{"Word joiner", joinerLabels(), &sel.Joiner},
	}
	for _, p := range prompts {
		*p.target, err = ui.Select(p.title, p.options)
		if err != nil {
			return core.Spec{}, err
		}
	}

	sel.MinSyllables, err = selectCount("Minimum syllables per word", 1, 4)
	if err != nil {
		return core.Spec{}, err
	}
	sel.MaxSyllables, err = selectCount("Maximum syllables per word", sel.MinSyllables, 5)
	if err != nil {
		return core.Spec{}, err
	}

	return builder.FromSelections(sel)
}

func selectCount(title string, lo, hi int) (int, error) {
	options := make([]string, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		options = append(options, strconv.Itoa(i))
	}
	idx, err := ui.Select(title, options)
	if err != nil {
		return 0, err
	}
	return lo + idx, nil
}

func joinerLabels() []string {
	labels := make([]string, len(phonology.Joiners))
	for i, j := range phonology.Joiners {
		switch j {
		case " ":
			labels[i] = "space"
		default:
			labels[i] = fmt.Sprintf("%q", j)
		}
	}
	return labels
}
