package repository

import (
	"context"
	"database/sql"
	"sort"

	"github.com/iliyamo/dinosaur-museum/internal/model"
)

// TicketRepo reads the museum's price table from MySQL.  Ticket types
// and extras live in separate tables, each with a child table holding
// one price per entrant type.
type TicketRepo struct {
	db *sql.DB
}

// NewTicketRepo constructs a TicketRepo with the provided DB handle.
func NewTicketRepo(db *sql.DB) *TicketRepo {
	return &TicketRepo{db: db}
}

// LoadPriceTable assembles the complete price table.  A ticket type or
// extra without any price rows is still returned, with an empty price map.
func (r *TicketRepo) LoadPriceTable(ctx context.Context) (model.PriceTable, error) {
	const qTickets = `SELECT t.code, t.description, p.entrant_type, p.price_cents
	                  FROM ticket_types t
	                  LEFT JOIN ticket_prices p ON p.ticket_code = t.code
	                  ORDER BY t.code, p.entrant_type`
	const qExtras = `SELECT e.code, e.description, p.entrant_type, p.price_cents
	                 FROM extras e
	                 LEFT JOIN extra_prices p ON p.extra_code = e.code
	                 ORDER BY e.code, p.entrant_type`

	tickets, err := r.loadEntries(ctx, qTickets)
	if err != nil {
		return model.PriceTable{}, err
	}
	extras, err := r.loadEntries(ctx, qExtras)
	if err != nil {
		return model.PriceTable{}, err
	}
	return model.PriceTable{Tickets: tickets, Extras: extras}, nil
}

func (r *TicketRepo) loadEntries(ctx context.Context, q string) (map[string]model.PriceEntry, error) {
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]model.PriceEntry{}
	for rows.Next() {
		var (
			code, desc string
			entrant    sql.NullString
			cents      sql.NullInt64
		)
		if err := rows.Scan(&code, &desc, &entrant, &cents); err != nil {
			return nil, err
		}
		e, ok := out[code]
		if !ok {
			e = model.PriceEntry{Description: desc, PriceInCents: map[string]int{}}
		}
		if entrant.Valid && cents.Valid {
			e.PriceInCents[entrant.String] = int(cents.Int64)
		}
		out[code] = e
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReplacePriceTable swaps the stored price table inside one transaction.
func (r *TicketRepo) ReplacePriceTable(ctx context.Context, table model.PriceTable) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()
	for _, q := range []string{
		`DELETE FROM ticket_prices`,
		`DELETE FROM ticket_types`,
		`DELETE FROM extra_prices`,
		`DELETE FROM extras`,
	} {
		if _, err = tx.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	if err = insertEntries(ctx, tx, table.Tickets,
		`INSERT INTO ticket_types (code, description) VALUES (?, ?)`,
		`INSERT INTO ticket_prices (ticket_code, entrant_type, price_cents) VALUES (?, ?, ?)`); err != nil {
		return err
	}
	err = insertEntries(ctx, tx, table.Extras,
		`INSERT INTO extras (code, description) VALUES (?, ?)`,
		`INSERT INTO extra_prices (extra_code, entrant_type, price_cents) VALUES (?, ?, ?)`)
	return err
}

func insertEntries(ctx context.Context, tx *sql.Tx, entries map[string]model.PriceEntry, qParent, qPrice string) error {
	codes := make([]string, 0, len(entries))
	for code := range entries {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		e := entries[code]
		if _, err := tx.ExecContext(ctx, qParent, code, e.Description); err != nil {
			return err
		}
		entrants := make([]string, 0, len(e.PriceInCents))
		for entrant := range e.PriceInCents {
			entrants = append(entrants, entrant)
		}
		sort.Strings(entrants)
		for _, entrant := range entrants {
			if _, err := tx.ExecContext(ctx, qPrice, code, entrant, e.PriceInCents[entrant]); err != nil {
				return err
			}
		}
	}
	return nil
}
