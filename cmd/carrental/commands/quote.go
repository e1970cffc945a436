package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"carrental/internal/app/dto"
	rentalapp "carrental/internal/app/handlers/rental"
	"carrental/internal/app/queries"
)

func quoteCmd() *cobra.Command {
	var in rentalapp.QuotePriceQuery
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Compute the final price without picking a car",
		RunE: runE(func(cmd *cobra.Command) error {
			q, err := queries.Ask[rentalapp.QuotePriceQuery, dto.Quote](cmd.Context(), appCtx.queries, in)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), q)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s for %d day(s), bracket %d-%d x%.2f\n",
				q.Amount, q.Days, q.Bracket.From, q.Bracket.To, q.Bracket.Multiplier)
			return nil
		}),
	}
	cmd.Flags().StringVar(&in.CustomerID, "customer", "", "customer id")
	cmd.Flags().StringVar(&in.CategoryID, "category", "", "car category id")
	cmd.Flags().IntVar(&in.Days, "days", 1, "number of rental days")
	return cmd
}

func pickCmd() *cobra.Command {
	var in rentalapp.PickCarQuery
	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick a random available car from a category",
		RunE: runE(func(cmd *cobra.Command) error {
			car, err := queries.Ask[rentalapp.PickCarQuery, dto.Car](cmd.Context(), appCtx.queries, in)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), car)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s [%s] %d\n", car.Name, car.ID, car.ReleaseYear)
			return nil
		}),
	}
	cmd.Flags().StringVar(&in.CategoryID, "category", "", "car category id")
	return cmd
}

func taxesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "taxes",
		Short: "Print the age brackets in effect",
		RunE: runE(func(cmd *cobra.Command) error {
			rules := make([]dto.TaxRule, 0)
			for _, r := range appCtx.taxes.Rules() {
				rules = append(rules, dto.MapTaxRule(r))
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), rules)
			}
			for _, r := range rules {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d-%-3d x%.2f\n", r.From, r.To, r.Multiplier)
			}
			return nil
		}),
	}
}
