package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grayvines/mkpkg/internal/config"
	"github.com/grayvines/mkpkg/internal/tooling"
)

func newDoctorCmd(env *Env, f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that external tools and user defaults are usable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			missing := tooling.CheckRequirements(env.Stdout, env.LookPath)

			fmt.Fprintln(env.Stdout, "Config:")
			_, err := config.Open(f.configPath)
			var invalid *config.InvalidError
			switch {
			case errors.As(err, &invalid):
				fmt.Fprintf(env.Stdout, "  [FAIL] %s\n", f.configPath)
				for _, issue := range invalid.Issues {
					fmt.Fprintf(env.Stdout, "         %s\n", issue)
				}
				return fmt.Errorf("config file %s is invalid", f.configPath)
			case err != nil:
				return err
			default:
				fmt.Fprintf(env.Stdout, "  [ OK ] %s\n", f.configPath)
			}

			if missing > 0 {
				fmt.Fprintf(env.Stdout, "%d tool(s) missing; pass the matching --no-* flag or install them.\n", missing)
			}
			return nil
		},
	}
}
