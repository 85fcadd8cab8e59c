package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/SscSPs/currency_calculator/internal/core/domain"
	"github.com/SscSPs/currency_calculator/internal/utils"
	"github.com/spf13/cobra"
)

const (
	msgInvalidArguments = "Invalid input arguments provided. Please provide input only in format : <ccy1> <amount1> in <ccy2>"
	msgUnknownRate      = "Unable to find rate for %s/%s"
)

// runConvert handles `fxcalc <ccy1> <amount> in <ccy2>`.
func (a *app) runConvert(cmd *cobra.Command, args []string) error {
	if !validArguments(args) {
		fmt.Fprintln(a.out, msgInvalidArguments)
		return errReported
	}
	source, amountText, destination := args[0], args[1], args[3]

	ctx := cmd.Context()
	container := a.services(nil)

	sourceKnown, err := container.Currency.IsCurrencyAvailable(ctx, source)
	if err != nil {
		return err
	}
	destinationKnown, err := container.Currency.IsCurrencyAvailable(ctx, destination)
	if err != nil {
		return err
	}
	if !sourceKnown || !destinationKnown {
		fmt.Fprintf(a.out, msgUnknownRate+"\n", domain.NormalizeCode(source), domain.NormalizeCode(destination))
		return errReported
	}

	conversion, err := container.Conversion.Convert(ctx, source, destination, amountText)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return errReported
	}
	fmt.Fprintln(a.out, utils.FormatConversion(amountText, conversion))

	if a.explain {
		resolution, err := container.Conversion.Explain(ctx, source, destination)
		if err != nil {
			fmt.Fprintln(a.out, err.Error())
			return errReported
		}
		writeResolution(a.out, resolution, 1)
	}
	return nil
}

// validArguments checks the four-token shape and that the amount is numeric.
func validArguments(args []string) bool {
	if len(args) != 4 {
		return false
	}
	for _, arg := range args {
		if strings.TrimSpace(arg) == "" {
			return false
		}
	}
	if !strings.EqualFold(args[2], "in") {
		return false
	}
	_, err := domain.ParseAmount(args[1])
	return err == nil
}

func writeResolution(w io.Writer, res *domain.Resolution, depth int) {
	indent := strings.Repeat("  ", depth)
	relation := res.Relation.Kind.String()
	if res.Relation.IsBridge() {
		relation += " via " + string(res.Relation.Via)
	}
	if res.Relation.IsZero() {
		relation = "unresolved"
	}
	fmt.Fprintf(w, "%s%s %s rate %s\n", indent, res.Pair, relation, res.Rate.String())
	for i := range res.Legs {
		writeResolution(w, &res.Legs[i], depth+1)
	}
}
