// Package ticket prices museum admissions and builds purchase receipts.
//
// Invalid input is not a Go error here: Price and BuildReceipt return a
// tagged outcome whose failure branch carries the exact message shown to
// visitors, e.g. "Entrant type 'kid' cannot be found.".
package ticket

import (
    "fmt"

    "github.com/iliyamo/dinosaur-museum/internal/model"
)

// Kinds of lookups that can fail while pricing a ticket.
const (
    KindTicket  = "Ticket type"
    KindEntrant = "Entrant type"
    KindExtra   = "Extra type"
)

// NotFoundError reports a ticket type, entrant type or extra that is not
// in the price table.
type NotFoundError struct {
    Kind string
    Name string
}

func (e *NotFoundError) Error() string {
    return fmt.Sprintf("%s '%s' cannot be found.", e.Kind, e.Name)
}

// Result is the outcome of pricing one ticket: Cents when Err is nil,
// otherwise Err describes the first invalid field.
type Result struct {
    Cents int
    Err   error
}

// OK reports whether the ticket was priced.
func (r Result) OK() bool { return r.Err == nil }

// Message returns the failure text, or "" on success.
func (r Result) Message() string {
    if r.Err == nil {
        return ""
    }
    return r.Err.Error()
}

func fail(kind, name string) Result {
    return Result{Err: &NotFoundError{Kind: kind, Name: name}}
}

// Price computes the cost of a ticket in cents.  Checks run in order
// ticket type, entrant type, then each extra; the first failure wins and
// later extras are not looked at.
func Price(table model.PriceTable, info model.TicketInfo) Result {
    tt, ok := table.Tickets[info.TicketType]
    if !ok {
        return fail(KindTicket, info.TicketType)
    }
    base, ok := tt.PriceInCents[info.EntrantType]
    if !ok {
        return fail(KindEntrant, info.EntrantType)
    }
    total := base
    for _, name := range info.Extras {
        extra, ok := table.Extras[name]
        if !ok {
            return fail(KindExtra, name)
        }
        // an extra with no price for this entrant is free
        total += extra.PriceInCents[info.EntrantType]
    }
    return Result{Cents: total}
}
