// Package api implements the RESTful domain lookup API.
package api

import (
	"context"
	"errors"

	"github.com/gofiber/contrib/fiberzap"
	"github.com/gofiber/fiber/v2"
	"github.com/sql-sith/pslkit/api/v1"
	"github.com/sql-sith/pslkit/psl"
	"go.uber.org/zap"
)

// Config stores the configuration for the RESTful API.
type Config struct {
	// Enabled controls whether the API server is enabled.
	Enabled bool `json:"enabled"`

	// Listen is the address to listen on.
	Listen string `json:"listen"`

	// CacheSize is the maximum number of lookup results kept in memory.
	// If zero, a default size is used.
	CacheSize int `json:"cacheSize"`

	// EnableTrustedProxyCheck enables trusted proxy checks.
	EnableTrustedProxyCheck bool `json:"enableTrustedProxyCheck"`

	// TrustedProxies is the list of trusted proxies.
	// This only takes effect if EnableTrustedProxyCheck is true.
	TrustedProxies []string `json:"trustedProxies"`

	// ProxyHeader is the header used to determine the client's IP address.
	// If empty, the remote peer's address is used.
	ProxyHeader string `json:"proxyHeader"`
}

// Server returns a new API server serving lookups against the given table.
func (c *Config) Server(logger *zap.Logger, table *psl.Table) (*Server, error) {
	if c.Listen == "" {
		return nil, errors.New("no listen address specified")
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		EnableTrustedProxyCheck: c.EnableTrustedProxyCheck,
		TrustedProxies:          c.TrustedProxies,
		ProxyHeader:             c.ProxyHeader,
	})

	app.Use(fiberzap.New(fiberzap.Config{
		Logger: logger,
	}))

	v1.Routes(app, v1.NewHandler(table, c.CacheSize))

	return &Server{
		logger: logger,
		app:    app,
		listen: c.Listen,
	}, nil
}

// Server is the RESTful API server.
type Server struct {
	logger *zap.Logger
	app    *fiber.App
	listen string
}

// ZapField implements [pslkit.Service.ZapField].
func (s *Server) ZapField() zap.Field {
	return zap.String("service", "api")
}

// Start implements [pslkit.Service.Start].
func (s *Server) Start(_ context.Context) error {
	go func() {
		if err := s.app.Listen(s.listen); err != nil {
			s.logger.Error("Failed to serve API", zap.Error(err))
		}
	}()
	return nil
}

// Stop implements [pslkit.Service.Stop].
func (s *Server) Stop() error {
	return s.app.Shutdown()
}
