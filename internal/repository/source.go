package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/iliyamo/dinosaur-museum/internal/model"
)

//go:embed fixtures/dinosaurs.json
var dinosaursJSON []byte

//go:embed fixtures/tickets.json
var ticketsJSON []byte

// FixtureSource serves the example datasets bundled with the binary.
type FixtureSource struct{}

// Dinosaurs decodes the bundled dinosaur collection.
func (FixtureSource) Dinosaurs(ctx context.Context) ([]model.Dinosaur, error) {
	var out []model.Dinosaur
	if err := json.Unmarshal(dinosaursJSON, &out); err != nil {
		return nil, fmt.Errorf("decode dinosaur fixtures: %w", err)
	}
	if len(out) == 0 {
		return nil, ErrEmptyCatalog
	}
	return out, nil
}

// PriceTable decodes the bundled price table.
func (FixtureSource) PriceTable(ctx context.Context) (model.PriceTable, error) {
	var out model.PriceTable
	if err := json.Unmarshal(ticketsJSON, &out); err != nil {
		return model.PriceTable{}, fmt.Errorf("decode ticket fixtures: %w", err)
	}
	if len(out.Tickets) == 0 {
		return model.PriceTable{}, ErrEmptyCatalog
	}
	return out, nil
}

// MySQLSource reads both datasets through the MySQL repositories.
type MySQLSource struct {
	Dinos   *DinosaurRepo
	Tickets *TicketRepo
}

// NewMySQLSource wires the repositories around a single connection pool.
func NewMySQLSource(db *sql.DB) *MySQLSource {
	return &MySQLSource{Dinos: NewDinosaurRepo(db), Tickets: NewTicketRepo(db)}
}

// Dinosaurs lists the stored dinosaur collection.
func (s *MySQLSource) Dinosaurs(ctx context.Context) ([]model.Dinosaur, error) {
	out, err := s.Dinos.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list dinosaurs: %w", err)
	}
	if len(out) == 0 {
		return nil, ErrEmptyCatalog
	}
	return out, nil
}

// PriceTable loads the stored price table.
func (s *MySQLSource) PriceTable(ctx context.Context) (model.PriceTable, error) {
	out, err := s.Tickets.LoadPriceTable(ctx)
	if err != nil {
		return model.PriceTable{}, fmt.Errorf("load price table: %w", err)
	}
	if len(out.Tickets) == 0 {
		return model.PriceTable{}, ErrEmptyCatalog
	}
	return out, nil
}

// Seed replaces the stored datasets with the given ones.
func (s *MySQLSource) Seed(ctx context.Context, dinos []model.Dinosaur, table model.PriceTable) error {
	if err := s.Dinos.ReplaceAll(ctx, dinos); err != nil {
		return fmt.Errorf("seed dinosaurs: %w", err)
	}
	if err := s.Tickets.ReplacePriceTable(ctx, table); err != nil {
		return fmt.Errorf("seed price table: %w", err)
	}
	return nil
}
