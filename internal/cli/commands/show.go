package commands

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/onomast-labs/onomast/internal/cli/output"
	"github.com/onomast-labs/onomast/pkg/core"
	"github.com/onomast-labs/onomast/pkg/namegen"
)

// NewShowCommand creates the show command.
func NewShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the configured language",
		Long:  `Display the configured language spec: pattern, phoneme sets, syllable bounds and orthography.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContextWithoutStore(cmd)

			spec, err := namegen.LoadSpec(cmdCtx.Cfg.LanguagePath)
			if err != nil {
				return err
			}
			return renderSpec(cmdCtx.Renderer, cmdCtx.Cfg.LanguagePath, spec)
		},
	}
}

type specOutput struct {
	File         string            `json:"file"`
	Pattern      string            `json:"pattern"`
	Phonemes     map[string]string `json:"phonemes"`
	MinSyllables int               `json:"min_syllables"`
	MaxSyllables int               `json:"max_syllables"`
	Forbidden    []string          `json:"forbidden"`
	NoDoubles    bool              `json:"no_doubles"`
	Joiner       string            `json:"joiner"`
}

func renderSpec(r *output.Renderer, path string, spec core.Spec) error {
	phonemes := make(map[string]string, len(spec.Phonemes))
	for role, set := range spec.Phonemes {
		phonemes[role] = set.String()
	}

	if r.EffectiveMode() == output.ModeJSON {
		enc := json.NewEncoder(r.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(specOutput{
			File:         path,
			Pattern:      string(spec.Pattern),
			Phonemes:     phonemes,
			MinSyllables: spec.MinSyllables,
			MaxSyllables: spec.MaxSyllables,
			Forbidden:    spec.Restrictions.Forbidden,
			NoDoubles:    spec.Restrictions.NoDoubles,
			Joiner:       spec.Orthography.Joiner,
		})
	}

	r.Header(1, "Language")
	r.KeyValue("file", path)
	r.KeyValue("pattern", string(spec.Pattern))
	r.KeyValue("syllables", fmt.Sprintf("%d-%d", spec.MinSyllables, spec.MaxSyllables))

	roles := make([]string, 0, len(phonemes))
	for role := range phonemes {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	for _, role := range roles {
		r.KeyValue("phonemes "+role, phonemes[role])
	}

	if len(spec.Restrictions.Forbidden) > 0 {
		r.KeyValue("forbidden", strings.Join(spec.Restrictions.Forbidden, ", "))
	}
	r.KeyValue("no doubles", fmt.Sprintf("%t", spec.Restrictions.NoDoubles))
	r.KeyValue("joiner", fmt.Sprintf("%q", spec.Orthography.Joiner))
	return nil
}
