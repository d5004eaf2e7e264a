// Package service assembles pslkit services from configuration.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sql-sith/pslkit"
	"github.com/sql-sith/pslkit/api"
	"github.com/sql-sith/pslkit/jsoncfg"
	"github.com/sql-sith/pslkit/psl"
	"github.com/sql-sith/pslkit/source"
	"go.uber.org/zap"
)

// Config is the main configuration structure.
// It may be marshaled as or unmarshaled from JSON.
type Config struct {
	PSL DatasetConfig `json:"psl"`
	API api.Config    `json:"api"`
}

// DatasetConfig selects the suffix dataset source.
// At most one of Path and URL may be set.
// If neither is set, the dataset is fetched from the canonical PSL URL.
type DatasetConfig struct {
	// Path is the path to a local dataset file.
	Path string `json:"path"`

	// URL is the location to fetch the dataset from.
	URL string `json:"url"`

	// FetchTimeout bounds a dataset fetch. If zero, a default is used.
	FetchTimeout jsoncfg.Duration `json:"fetchTimeout"`
}

// Source returns the text source selected by the configuration.
func (c *DatasetConfig) Source() (source.Source, error) {
	if c.Path != "" && c.URL != "" {
		return nil, errors.New("dataset path and URL are mutually exclusive")
	}
	if c.Path != "" {
		return &source.FileSource{Path: c.Path}, nil
	}
	return &source.HTTPSource{
		URL:     c.URL,
		Timeout: c.FetchTimeout.Value(),
	}, nil
}

// Manager loads the suffix dataset and creates the configured services.
func (sc *Config) Manager(ctx context.Context, logger *zap.Logger) (*Manager, error) {
	src, err := sc.PSL.Source()
	if err != nil {
		return nil, err
	}

	table, err := psl.Load(ctx, src)
	if err != nil {
		return nil, err
	}

	logger.Info("Loaded suffix dataset",
		zap.Stringer("source", src),
		zap.Int("lines", table.Len()),
		zap.Int("rules", len(table.Rules())),
	)

	var services []pslkit.Service

	if sc.API.Enabled {
		server, err := sc.API.Server(logger, table)
		if err != nil {
			return nil, fmt.Errorf("failed to create API server: %w", err)
		}
		services = append(services, server)
	}

	if len(services) == 0 {
		return nil, errors.New("no services enabled")
	}

	return &Manager{
		logger:   logger,
		table:    table,
		services: services,
	}, nil
}

// Manager initializes the service manager.
type Manager struct {
	logger   *zap.Logger
	table    *psl.Table
	services []pslkit.Service
}

// Table returns the loaded suffix table.
func (m *Manager) Table() *psl.Table {
	return m.table
}

// Start starts all configured services.
func (m *Manager) Start(ctx context.Context) error {
	for _, s := range m.services {
		if err := s.Start(ctx); err != nil {
			return fmt.Errorf("failed to start service: %w", err)
		}
		m.logger.Info("Started service", s.ZapField())
	}
	return nil
}

// Stop stops all running services.
func (m *Manager) Stop() {
	for _, s := range m.services {
		if err := s.Stop(); err != nil {
			m.logger.Error("Failed to stop service", s.ZapField(), zap.Error(err))
			continue
		}
		m.logger.Info("Stopped service", s.ZapField())
	}
}
