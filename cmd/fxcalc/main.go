// Package main is the entry point for the fxcalc binary.
// It converts amounts on the command line and can serve the same engine over HTTP.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/SscSPs/currency_calculator/internal/apperrors"
)

// @title FX Cross-Rate Calculator API
// @version 1.0
// @description Converts amounts between currencies using quoted rates and a cross-reference matrix.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints a failure that was not already written by a command.
// CurrencyErrors print their message, then the detail and system on a second line.
func reportError(w io.Writer, err error) {
	if errors.Is(err, errReported) {
		return
	}
	fmt.Fprintf(w, "Error: %s\n", apperrors.UserMessage(err))

	var ce *apperrors.CurrencyError
	if errors.As(err, &ce) && ce.Detail != "" {
		fmt.Fprintf(w, "  %s [%s]\n", ce.Detail, ce.System)
	}
}
