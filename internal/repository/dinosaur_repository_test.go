package repository

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/dinosaur-museum/internal/model"
)

var dinosaurColumns = []string{"dinosaur_id", "name", "pronunciation", "meaning_of_name", "diet",
	"length_in_meters", "period", "mya_points", "mya_start", "mya_end", "info"}

func TestDinosaurRepoListAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(dinosaurColumns).
		AddRow("a", "Allosaurus", "AL-oh-sore-us", "different lizard", "carnivorous", 12.0, "Late Jurassic", 2, 156.0, 144.0, "Big.").
		AddRow("x", "Xenoceratops", "ZEE-no", "alien horned face", "herbivorous", 6.0, "Early Cretaceous", 1, 77.5, nil, "Horns.").
		AddRow("g", "Gap", "gap", "", "", 1.0, "Triassic", 2, 201.0, nil, "Partial.")
	mock.ExpectQuery("SELECT dinosaur_id, name").WillReturnRows(rows)

	got, err := NewDinosaurRepo(db).ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "Allosaurus", got[0].Name)
	assert.Equal(t, model.Mya{156, 144}, got[0].Mya)
	assert.Equal(t, model.Mya{77.5}, got[1].Mya)
	require.Len(t, got[2].Mya, 2)
	assert.True(t, math.IsNaN(got[2].Mya[1]))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDinosaurRepoListAllError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("connection reset")
	mock.ExpectQuery("SELECT dinosaur_id").WillReturnError(boom)

	_, err = NewDinosaurRepo(db).ListAll(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestDinosaurRepoReplaceAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM dinosaurs").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("INSERT INTO dinosaurs").
		WithArgs("a", "Allosaurus", "", "", "", 12.0, "Late Jurassic", 2, 156.0, 144.0, "", 0).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO dinosaurs").
		WithArgs("x", "Xenoceratops", "", "", "", 6.0, "Early Cretaceous", 1, 77.5, nil, "", 1).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	err = NewDinosaurRepo(db).ReplaceAll(context.Background(), []model.Dinosaur{
		{DinosaurID: "a", Name: "Allosaurus", LengthInMeters: 12, Period: "Late Jurassic", Mya: model.Mya{156, 144}},
		{DinosaurID: "x", Name: "Xenoceratops", LengthInMeters: 6, Period: "Early Cretaceous", Mya: model.Mya{77.5}},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDinosaurRepoReplaceAllRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM dinosaurs").WillReturnError(errors.New("locked"))
	mock.ExpectRollback()

	err = NewDinosaurRepo(db).ReplaceAll(context.Background(), []model.Dinosaur{{DinosaurID: "a"}})
	assert.EqualError(t, err, "locked")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDinosaurRepoReplaceAllKeepsDuplicateIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM dinosaurs").WillReturnResult(sqlmock.NewResult(0, 0))
	for i, name := range []string{"One", "Two"} {
		mock.ExpectExec("INSERT INTO dinosaurs").
			WithArgs("dup", name, "", "", "", 0.0, "Triassic", 1, 230.0, nil, "", i).
			WillReturnResult(sqlmock.NewResult(int64(i+1), 1))
	}
	mock.ExpectCommit()

	err = NewDinosaurRepo(db).ReplaceAll(context.Background(), []model.Dinosaur{
		{DinosaurID: "dup", Name: "One", Period: "Triassic", Mya: model.Mya{230}},
		{DinosaurID: "dup", Name: "Two", Period: "Triassic", Mya: model.Mya{230}},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDinosaurRepoListAllOrdersByPosition(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`ORDER BY position, id`).WillReturnRows(sqlmock.NewRows(dinosaurColumns).
		AddRow("dup", "One", "", "", "", 1.0, "Triassic", 1, 230.0, nil, "").
		AddRow("dup", "Two", "", "", "", 1.0, "Triassic", 1, 220.0, nil, ""))

	got, err := NewDinosaurRepo(db).ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "One", got[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
