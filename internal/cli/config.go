package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grayvines/mkpkg/internal/branding"
	"github.com/grayvines/mkpkg/internal/config"
)

func newConfigCmd(env *Env, f *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage user defaults",
		Long: fmt.Sprintf(`Read and write %s defaults stored at ~/%s/config.yaml.

Keys: %s.
Each key can also be set through the environment as %s.`,
			branding.DisplayName(), branding.HomeDir(),
			strings.Join(config.Keys(), ", "), branding.EnvVar("<KEY>")),
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a default",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Open(f.configPath)
			if err != nil {
				return err
			}
			key, value := args[0], args[1]
			if err := cfg.Set(key, value); err != nil {
				return fmt.Errorf("setting config key %q: %w", key, err)
			}
			fmt.Fprintf(env.Stdout, "Set %s = %s\n", key, value)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Get a default",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Open(f.configPath)
			if err != nil {
				return err
			}
			fmt.Fprintln(env.Stdout, cfg.Get(args[0]))
			return nil
		},
	})

	return cmd
}
