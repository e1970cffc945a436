package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	appcommands "carrental/internal/app/commands"
	"carrental/internal/app/dto"
	rentalapp "carrental/internal/app/handlers/rental"
)

func rentCmd() *cobra.Command {
	var in rentalapp.RentCarCommand
	cmd := &cobra.Command{
		Use:   "rent",
		Short: "Rent a random car from a category",
		RunE: runE(func(cmd *cobra.Command) error {
			tx, err := appcommands.Dispatch[rentalapp.RentCarCommand, dto.Transaction](cmd.Context(), appCtx.commands, in)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, tx)
			}
			fmt.Fprintf(out, "Transaction: %s\n", tx.ID)
			fmt.Fprintf(out, "Customer:    %s (%d)\n", tx.Customer.Name, tx.Customer.Age)
			fmt.Fprintf(out, "Car:         %s [%s]\n", tx.Car.Name, tx.Car.ID)
			fmt.Fprintf(out, "Due date:    %s (%d day(s))\n", tx.DueDate, tx.Days)
			fmt.Fprintf(out, "Amount:      %s\n", tx.Amount)
			return nil
		}),
	}
	cmd.Flags().StringVar(&in.CustomerID, "customer", "", "customer id")
	cmd.Flags().StringVar(&in.CategoryID, "category", "", "car category id")
	cmd.Flags().IntVar(&in.Days, "days", 1, "number of rental days")
	return cmd
}
