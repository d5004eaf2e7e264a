// Package v1 implements version 1 of the domain lookup API.
package v1

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/sql-sith/pslkit/cache"
	"github.com/sql-sith/pslkit/domain"
	"github.com/sql-sith/pslkit/psl"
)

// DefaultCacheSize is the default number of lookup results kept in memory.
const DefaultCacheSize = 1024

// Routes sets up the v1 API routes.
func Routes(router fiber.Router, h *Handler) {
	v1 := router.Group("/v1")
	v1.Get("/info", GetServerInfo)
	v1.Get("/domains/:domain", h.GetDomain)
}

// ServerInfo contains information about the API server.
type ServerInfo struct {
	Name       string `json:"server"`
	APIVersion string `json:"apiVersion"`
}

var serverInfo = ServerInfo{
	Name:       "pslkit",
	APIVersion: "v1",
}

// GetServerInfo returns information about the API server.
func GetServerInfo(c *fiber.Ctx) error {
	return c.JSON(&serverInfo)
}

// DomainInfo is the lookup result for one domain name.
type DomainInfo struct {
	Domain            string `json:"domain"`
	Valid             bool   `json:"valid"`
	PublicSuffix      string `json:"publicSuffix,omitempty"`
	RegistrableDomain string `json:"registrableDomain,omitempty"`
	NICURL            string `json:"nicUrl,omitempty"`
	Category          string `json:"category,omitempty"`
}

// Handler answers domain lookup requests against one immutable table.
type Handler struct {
	table *psl.Table

	mu      sync.Mutex
	results *cache.Bounded[string, DomainInfo]
}

// NewHandler returns a new lookup handler for the given table.
func NewHandler(table *psl.Table, cacheSize int) *Handler {
	if cacheSize < 1 {
		cacheSize = DefaultCacheSize
	}
	return &Handler{
		table:   table,
		results: cache.NewBounded[string, DomainInfo](cacheSize),
	}
}

// GetDomain handles GET /v1/domains/:domain.
//
// Syntactically invalid domain names are not an error: the response
// carries valid=false and no lookup fields.
func (h *Handler) GetDomain(c *fiber.Ctx) error {
	name := domain.Normalize(c.Params("domain"))
	if name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing domain name")
	}
	info := h.lookup(name)
	return c.JSON(&info)
}

func (h *Handler) lookup(name string) DomainInfo {
	h.mu.Lock()
	defer h.mu.Unlock()

	if info, ok := h.results.Get(name); ok {
		return info
	}

	info := DomainInfo{
		Domain: name,
		Valid:  domain.Valid(name),
	}
	if info.Valid {
		result := psl.Match(name, h.table)
		info.PublicSuffix = result.PublicSuffix
		info.RegistrableDomain = result.RegistrableDomain
		info.NICURL = h.table.NIC(result.Line)
		info.Category = psl.Classify(result.PublicSuffix, result.RegistrableDomain).String()
	}

	h.results.Put(name, info)
	return info
}
