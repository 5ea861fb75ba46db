// Package repository contains data access logic separated from HTTP handlers.
// This file defines the DinosaurRepo which reads the museum's dinosaur
// collection from MySQL.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"math"

	"github.com/iliyamo/dinosaur-museum/internal/model"
)

// DinosaurRepo encapsulates all database queries related to dinosaurs.
type DinosaurRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewDinosaurRepo constructs a DinosaurRepo with the provided DB handle.
func NewDinosaurRepo(db *sql.DB) *DinosaurRepo {
	return &DinosaurRepo{db: db}
}

// ListAll returns every dinosaur in display order.  The mya range is
// stored as mya_points (1 or 2) plus two nullable columns; a NULL inside
// the counted points is kept as model.Missing.
func (r *DinosaurRepo) ListAll(ctx context.Context) ([]model.Dinosaur, error) {
	const q = `SELECT dinosaur_id, name, pronunciation, meaning_of_name, diet,
	                  length_in_meters, period, mya_points, mya_start, mya_end, info
	           FROM dinosaurs ORDER BY position, id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Dinosaur
	for rows.Next() {
		var (
			d          model.Dinosaur
			points     int
			start, end sql.NullFloat64
		)
		if err := rows.Scan(&d.DinosaurID, &d.Name, &d.Pronunciation, &d.MeaningOfName, &d.Diet,
			&d.LengthInMeters, &d.Period, &points, &start, &end, &d.Info); err != nil {
			return nil, err
		}
		d.Mya = myaFromColumns(points, start, end)
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func myaFromColumns(points int, start, end sql.NullFloat64) model.Mya {
	cols := []sql.NullFloat64{start, end}
	if points > len(cols) {
		points = len(cols)
	}
	if points < 0 {
		points = 0
	}
	m := make(model.Mya, points)
	for i := 0; i < points; i++ {
		if cols[i].Valid {
			m[i] = cols[i].Float64
		} else {
			m[i] = model.Missing
		}
	}
	return m
}

// ReplaceAll swaps the stored collection for the given records inside a
// single transaction.  Input order is kept in the position column.
// dinosaur_id is not unique; lookups take the first row by position.
func (r *DinosaurRepo) ReplaceAll(ctx context.Context, dinos []model.Dinosaur) (err error) {
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
	if _, err = tx.ExecContext(ctx, `DELETE FROM dinosaurs`); err != nil {
		return err
	}
	const qInsert = `INSERT INTO dinosaurs
	    (dinosaur_id, name, pronunciation, meaning_of_name, diet, length_in_meters,
	     period, mya_points, mya_start, mya_end, info, position)
	    VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for i, d := range dinos {
		start, end := myaColumns(d.Mya)
		if _, err = tx.ExecContext(ctx, qInsert, d.DinosaurID, d.Name, d.Pronunciation, d.MeaningOfName,
			d.Diet, d.LengthInMeters, d.Period, len(d.Mya), start, end, d.Info, i); err != nil {
			return err
		}
	}
	return nil
}

func myaColumns(m model.Mya) (start, end sql.NullFloat64) {
	cols := []*sql.NullFloat64{&start, &end}
	for i := 0; i < len(m) && i < len(cols); i++ {
		if !math.IsNaN(m[i]) {
			*cols[i] = sql.NullFloat64{Float64: m[i], Valid: true}
		}
	}
	return start, end
}
