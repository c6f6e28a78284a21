package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"warehouse/internal/config"
)

func newJobCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "job",
		Short: "Inspect or run background jobs",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List registered jobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), config.Load())
			if err != nil {
				return err
			}
			defer a.close()
			for _, name := range a.scheduler.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "run <name>",
		Short: "Run a single job now and exit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), config.Load())
			if err != nil {
				return err
			}
			defer a.close()

			fmt.Fprintf(cmd.OutOrStdout(), "Running job: %s\n", args[0])
			return a.scheduler.RunNow(args[0])
		},
	})

	return cmd
}
