package app

import (
	"errors"
	"fmt"

	"github.com/vk/unitgrid/internal/urn"
)

// DefaultOperator receives the charges a client makes against its own units.
const DefaultOperator = "urn:unitgrid:operator"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	RegistryPaths []string // hcl files or directories
	LedgerPath    string   // empty keeps receipts in memory

	Client    string
	Operator  string
	Unit      string
	Reference string
	Args      []string
	Balances  []string // identifiers whose ledger balance is reported after the run

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Reference == "" {
		return nil, errors.New("a reference to instantiate is required")
	}
	if len(cfg.RegistryPaths) == 0 {
		return nil, errors.New("at least one registry path is required")
	}
	if _, err := urn.Parse(cfg.Client); err != nil {
		return nil, fmt.Errorf("invalid client: %w", err)
	}
	if cfg.Operator == "" {
		cfg.Operator = DefaultOperator
	}
	if _, err := urn.Parse(cfg.Operator); err != nil {
		return nil, fmt.Errorf("invalid operator: %w", err)
	}
	for _, id := range cfg.Balances {
		if _, err := urn.Parse(id); err != nil {
			return nil, fmt.Errorf("invalid balance identifier: %w", err)
		}
	}
	if cfg.Unit == "" {
		cfg.Unit = "main"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return &cfg, nil
}
