package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/onomast-labs/onomast/internal/cli/config"
	"github.com/onomast-labs/onomast/pkg/namegen"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Initialize a new onomast project",
		Long: `Create an onomast.yaml config file and a randomly built language spec
in the given directory (default: current directory). Refuses to
overwrite existing files unless --force is set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContextWithoutStore(cmd)

			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create project directory: %w", err)
			}

			cfgPath := filepath.Join(dir, "onomast.yaml")
			langPath := filepath.Join(dir, config.DefaultLanguageFile)
			if !force {
				for _, p := range []string{cfgPath, langPath} {
					if _, err := os.Stat(p); err == nil {
						return fmt.Errorf("%s already exists (use --force to overwrite)", p)
					}
				}
			}

			rng, seed := newRand(cmdCtx.Cfg)
			spec := namegen.NewBuilder(rng).Random()
			if err := namegen.SaveSpec(langPath, spec); err != nil {
				return err
			}

			cfgYAML := fmt.Sprintf("language: %s\nstate_path: %s\n",
				config.DefaultLanguageFile, config.DefaultStateFile)
			if err := os.WriteFile(cfgPath, []byte(cfgYAML), 0o644); err != nil {
				return err
			}

			r := cmdCtx.Renderer
			r.Header(1, "Project initialized")
			r.KeyValue("config", cfgPath)
			r.KeyValue("language", langPath)
			r.KeyValue("pattern", string(spec.Pattern))
			r.KeyValue("seed", strconv.FormatUint(seed, 10))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")

	return cmd
}
