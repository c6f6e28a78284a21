package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"warehouse/internal/config"
	"warehouse/internal/database"
	"warehouse/internal/repository"
	"warehouse/pkg/ordernumber"
)

func newOrderNumberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order-number",
		Short: "Preview, validate or parse import order numbers",
	}

	var warehouseCode string
	next := &cobra.Command{
		Use:   "next",
		Short: "Print the number the next import order would receive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			db, err := database.Open(cfg.Database)
			if err != nil {
				return err
			}
			defer database.Close(db)

			gen := ordernumber.NewGenerator(repository.NewImportOrderRepository(db))
			number := gen.Generate(cmd.Context(), cfg.OrderNumber.Prefix, cfg.OrderNumber.Options(warehouseCode))
			fmt.Fprintln(cmd.OutOrStdout(), number)
			return nil
		},
	}
	next.Flags().StringVarP(&warehouseCode, "warehouse", "w", "", "Warehouse code, used when ORDER_NUMBER_USE_WAREHOUSE_CODE=true")

	var prefix string
	validate := &cobra.Command{
		Use:   "validate <number>",
		Short: "Check that a number is well formed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !ordernumber.Validate(args[0], prefix) {
				return fmt.Errorf("%s is not a valid order number", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", args[0])
			return nil
		},
	}
	validate.Flags().StringVarP(&prefix, "prefix", "p", "", "Required prefix")

	parse := &cobra.Command{
		Use:   "parse <number>",
		Short: "Split a number into prefix, warehouse, date and sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parts, err := ordernumber.Parse(args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(parts)
		},
	}

	cmd.AddCommand(next, validate, parse)
	return cmd
}
