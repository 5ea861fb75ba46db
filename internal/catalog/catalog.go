// Package catalog keeps the datasets the API serves: the dinosaur
// collection and the ticket price table.  They are loaded from a Source at
// startup and may be reloaded later by an administrator.
package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/iliyamo/dinosaur-museum/internal/model"
)

// Source provides both datasets.
type Source interface {
	Dinosaurs(ctx context.Context) ([]model.Dinosaur, error)
	PriceTable(ctx context.Context) (model.PriceTable, error)
}

// Stats summarises a loaded catalog.
type Stats struct {
	Dinosaurs   int       `json:"dinosaurs"`
	TicketTypes int       `json:"ticket_types"`
	Extras      int       `json:"extras"`
	LoadedAt    time.Time `json:"loaded_at"`
}

// Catalog is safe for concurrent use.  Readers get the snapshot that was
// current when they asked; a reload never mutates a returned slice or map.
type Catalog struct {
	src Source

	mu       sync.RWMutex
	dinos    []model.Dinosaur
	prices   model.PriceTable
	loadedAt time.Time
}

// New returns an empty catalog backed by src.  Call Load before serving.
func New(src Source) *Catalog {
	return &Catalog{src: src}
}

// Load fetches both datasets and swaps them in together.  On error the
// previous snapshot stays in place.
func (c *Catalog) Load(ctx context.Context) (Stats, error) {
	dinos, err := c.src.Dinosaurs(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("load dinosaurs: %w", err)
	}
	prices, err := c.src.PriceTable(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("load price table: %w", err)
	}

	c.mu.Lock()
	c.dinos = dinos
	c.prices = prices
	c.loadedAt = time.Now().UTC()
	c.mu.Unlock()
	return c.Stats(), nil
}

// Dinosaurs returns the current dinosaur collection.
func (c *Catalog) Dinosaurs() []model.Dinosaur {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dinos
}

// PriceTable returns the current price table.
func (c *Catalog) PriceTable() model.PriceTable {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.prices
}

// Stats reports the sizes of the current snapshot.
func (c *Catalog) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Stats{
		Dinosaurs:   len(c.dinos),
		TicketTypes: len(c.prices.Tickets),
		Extras:      len(c.prices.Extras),
		LoadedAt:    c.loadedAt,
	}
}
