package ticket_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/dinosaur-museum/internal/model"
	"github.com/iliyamo/dinosaur-museum/internal/ticket"
)

func TestBuildReceipt(t *testing.T) {
	purchases := []model.TicketInfo{
		{TicketType: "general", EntrantType: "adult", Extras: []string{"movie", "terrace"}},
		{TicketType: "general", EntrantType: "senior", Extras: []string{"terrace"}},
		{TicketType: "general", EntrantType: "child", Extras: []string{"education", "movie", "terrace"}},
		{TicketType: "general", EntrantType: "child", Extras: []string{"education", "movie", "terrace"}},
	}
	r := ticket.BuildReceipt(fixturePrices(t), purchases)
	require.True(t, r.OK())

	want := "Thank you for visiting the Dinosaur Museum!\n" +
		"-------------------------------------------\n" +
		"Adult General Admission: $50.00 (Movie Access, Terrace Access)\n" +
		"Senior General Admission: $35.00 (Terrace Access)\n" +
		"Child General Admission: $45.00 (Education Access, Movie Access, Terrace Access)\n" +
		"Child General Admission: $45.00 (Education Access, Movie Access, Terrace Access)\n" +
		"-------------------------------------------\n" +
		"TOTAL: $175.00"
	assert.Equal(t, want, r.String())
	assert.Equal(t, 17500, r.TotalCents)
	assert.Len(t, r.Lines, 4)
}

func TestBuildReceiptWithoutExtras(t *testing.T) {
	r := ticket.BuildReceipt(fixturePrices(t), []model.TicketInfo{
		{TicketType: "membership", EntrantType: "adult"},
	})
	want := "Thank you for visiting the Dinosaur Museum!\n" +
		"-------------------------------------------\n" +
		"Adult Membership Admission: $28.00\n" +
		"-------------------------------------------\n" +
		"TOTAL: $28.00"
	assert.Equal(t, want, r.String())
}

func TestBuildReceiptAbortsOnFirstFailure(t *testing.T) {
	r := ticket.BuildReceipt(fixturePrices(t), []model.TicketInfo{
		{TicketType: "general", EntrantType: "adult", Extras: []string{"movie"}},
		{TicketType: "discount", EntrantType: "adult", Extras: []string{"movie", "terrace"}},
		{TicketType: "general", EntrantType: "kid"},
	})
	assert.False(t, r.OK())
	assert.Equal(t, "Ticket type 'discount' cannot be found.", r.String())
	assert.Empty(t, r.Lines)
	assert.Zero(t, r.TotalCents)
}

func TestBuildReceiptEmpty(t *testing.T) {
	r := ticket.BuildReceipt(fixturePrices(t), nil)
	assert.Equal(t, "Thank you for visiting the Dinosaur Museum!\n"+
		"-------------------------------------------\n"+
		"-------------------------------------------\n"+
		"TOTAL: $0.00", r.String())
}

func TestFormatDollars(t *testing.T) {
	assert.Equal(t, "$0.00", ticket.FormatDollars(0))
	assert.Equal(t, "$0.05", ticket.FormatDollars(5))
	assert.Equal(t, "$12.30", ticket.FormatDollars(1230))
	assert.Equal(t, "$175.00", ticket.FormatDollars(17500))
	assert.Equal(t, "-$1.50", ticket.FormatDollars(-150))
}

func TestLineCapitalizesFirstLetterOnly(t *testing.T) {
	l := ticket.Line{EntrantType: "vIP", TicketDescription: "Night Tour", Cents: 999}
	assert.Equal(t, "VIP Night Tour: $9.99", l.String())

	l = ticket.Line{EntrantType: "élève", TicketDescription: "School Visit", Cents: 500, Extras: []string{"Movie Access"}}
	assert.Equal(t, "Élève School Visit: $5.00 (Movie Access)", l.String())
}
