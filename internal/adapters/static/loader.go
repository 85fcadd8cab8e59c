package static

import (
	"fmt"
	"os"

	"github.com/SscSPs/currency_calculator/internal/apperrors"
	portsrepo "github.com/SscSPs/currency_calculator/internal/core/ports/repositories"
	"github.com/magiconair/properties"
	"gopkg.in/yaml.v3"
)

// tablesFile is the YAML layout of a rate and precision override file.
type tablesFile struct {
	Rates             map[string]string `yaml:"rates"`
	Precision         map[string]int    `yaml:"precision"`
	FallbackPrecision *int              `yaml:"fallback_precision"`
}

// LoadCrossMatrix reads a properties file of <base><quote>=<relation> entries.
// An empty path loads the built-in matrix.
func LoadCrossMatrix(path string) (*CrossMatrix, error) {
	var (
		props *properties.Properties
		err   error
	)
	if path == "" {
		props, err = properties.Load(defaultCrossMatrix, properties.UTF8)
		if err != nil {
			return nil, fmt.Errorf("failed to read built-in cross matrix: %w", err)
		}
	} else {
		props, err = properties.LoadFile(path, properties.UTF8)
		if err != nil {
			return nil, fmt.Errorf("failed to read cross matrix file %s: %w", path, err)
		}
	}

	entries := props.Map()
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: cross matrix %q has no entries", apperrors.ErrValidation, path)
	}
	return NewCrossMatrix(entries)
}

// LoadTables builds the rate and precision tables. An empty path yields the
// built-in tables; otherwise each section present in the YAML file replaces the
// corresponding built-in table.
func LoadTables(path string) (*RateTable, *PrecisionTable, error) {
	file := tablesFile{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read tables file: %w", err)
		}
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, nil, fmt.Errorf("failed to parse tables file %s: %w", path, err)
		}
	}

	quotes := DefaultRates
	if len(file.Rates) > 0 {
		quotes = file.Rates
	}
	digits := DefaultPrecision
	if len(file.Precision) > 0 {
		digits = file.Precision
	}
	fallback := DefaultFallbackPrecision
	if file.FallbackPrecision != nil {
		fallback = *file.FallbackPrecision
	}

	rates, err := NewRateTable(quotes)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build rate table: %w", err)
	}
	precision, err := NewPrecisionTable(digits, fallback)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build precision table: %w", err)
	}
	return rates, precision, nil
}

// LoadRepositories loads all three tables and bundles them for the service container.
func LoadRepositories(matrixPath, tablesPath string) (*portsrepo.RepositoryProvider, error) {
	matrix, err := LoadCrossMatrix(matrixPath)
	if err != nil {
		return nil, err
	}
	rates, precision, err := LoadTables(tablesPath)
	if err != nil {
		return nil, err
	}
	return &portsrepo.RepositoryProvider{
		RateRepo:      rates,
		MatrixRepo:    matrix,
		PrecisionRepo: precision,
	}, nil
}
