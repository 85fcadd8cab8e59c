package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCurrenciesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "currencies",
		Short: "List known currencies and their decimal places",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			currencies, err := a.services(nil).Currency.ListCurrencies(cmd.Context())
			if err != nil {
				return err
			}
			for _, c := range currencies {
				fmt.Fprintf(a.out, "%s %d\n", c.CurrencyCode, c.Precision)
			}
			return nil
		},
	}
}
