package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"warehouse/internal/config"
	"warehouse/internal/database"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert sample users, warehouses, suppliers and products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			db, err := database.Open(cfg.Database)
			if err != nil {
				return err
			}
			defer database.Close(db)

			res, err := database.Seed(db)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), `
=== Seed Report ===
Users:      %d
Warehouses: %d
Suppliers:  %d
Products:   %d
===================
`, res.Users, res.Warehouses, res.Suppliers, res.Products)
			return nil
		},
	}
}
