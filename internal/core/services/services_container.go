package services

import (
	"log/slog"

	portsrepo "github.com/SscSPs/currency_calculator/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_calculator/internal/core/ports/services"
	"github.com/SscSPs/currency_calculator/internal/platform/config"
	"github.com/SscSPs/currency_calculator/internal/platform/metrics"
)

// NewServiceContainer creates a new service container over the loaded tables.
// A nil m skips metric collection.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, logger *slog.Logger, m *metrics.Metrics) *portssvc.ServiceContainer {
	options := []ResolverOption{WithResolverLogger(logger)}
	if cfg != nil {
		options = append(options, WithMaxBridgeDepth(cfg.MaxBridgeDepth))
	}

	conversion := NewConversionService(repos, options...)
	if m != nil {
		conversion = NewInstrumentingConversionService(m, conversion)
	}
	conversion = NewLoggingConversionService(logger, conversion)

	return &portssvc.ServiceContainer{
		Conversion: conversion,
		Currency:   NewCurrencyService(repos.PrecisionRepo),
	}
}
