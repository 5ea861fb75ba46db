package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/dinosaur-museum/internal/model"
)

type stubSource struct {
	dinos    []model.Dinosaur
	prices   model.PriceTable
	dinoErr  error
	priceErr error
}

func (s *stubSource) Dinosaurs(context.Context) ([]model.Dinosaur, error) { return s.dinos, s.dinoErr }
func (s *stubSource) PriceTable(context.Context) (model.PriceTable, error) {
	return s.prices, s.priceErr
}

func TestLoad(t *testing.T) {
	src := &stubSource{
		dinos: []model.Dinosaur{{DinosaurID: "a"}, {DinosaurID: "b"}},
		prices: model.PriceTable{
			Tickets: map[string]model.PriceEntry{"general": {}},
			Extras:  map[string]model.PriceEntry{"movie": {}, "terrace": {}},
		},
	}
	c := New(src)
	assert.Empty(t, c.Dinosaurs())

	st, err := c.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, st.Dinosaurs)
	assert.Equal(t, 1, st.TicketTypes)
	assert.Equal(t, 2, st.Extras)
	assert.False(t, st.LoadedAt.IsZero())
	assert.Len(t, c.Dinosaurs(), 2)
	assert.Contains(t, c.PriceTable().Tickets, "general")
}

func TestLoadFailureKeepsSnapshot(t *testing.T) {
	src := &stubSource{
		dinos:  []model.Dinosaur{{DinosaurID: "a"}},
		prices: model.PriceTable{Tickets: map[string]model.PriceEntry{"general": {}}},
	}
	c := New(src)
	_, err := c.Load(context.Background())
	require.NoError(t, err)

	src.dinos = []model.Dinosaur{{DinosaurID: "new"}}
	src.priceErr = errors.New("db down")
	_, err = c.Load(context.Background())
	assert.ErrorIs(t, err, src.priceErr)

	// neither dataset was swapped
	assert.Equal(t, "a", c.Dinosaurs()[0].DinosaurID)
}
