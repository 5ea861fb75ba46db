package model

import (
    "encoding/json"
    "fmt"
)

// extrasKey is the reserved top-level key of the price table JSON that
// holds the extras instead of a ticket type.
const extrasKey = "extras"

// PriceEntry is a priced item of the museum: either an admission ticket
// type or an extra.  PriceInCents maps an entrant type (adult, child,
// senior, ...) to the price charged for that entrant.
type PriceEntry struct {
    Description  string         `json:"description"`
    PriceInCents map[string]int `json:"priceInCents"`
}

// PriceTable is the museum's full pricing data.  Tickets is keyed by
// ticket type (general, membership) and Extras by extra type (movie,
// education, terrace).
type PriceTable struct {
    Tickets map[string]PriceEntry
    Extras  map[string]PriceEntry
}

// TicketInfo describes a single ticket being priced or purchased.
type TicketInfo struct {
    TicketType  string   `json:"ticketType"`
    EntrantType string   `json:"entrantType"`
    Extras      []string `json:"extras"`
}

// UnmarshalJSON reads the flat layout used by the fixtures and the public
// API: every key is a ticket type except "extras".
func (p *PriceTable) UnmarshalJSON(b []byte) error {
    var raw map[string]json.RawMessage
    if err := json.Unmarshal(b, &raw); err != nil {
        return err
    }
    out := PriceTable{
        Tickets: make(map[string]PriceEntry, len(raw)),
        Extras:  map[string]PriceEntry{},
    }
    for key, msg := range raw {
        if key == extrasKey {
            if err := json.Unmarshal(msg, &out.Extras); err != nil {
                return fmt.Errorf("extras: %w", err)
            }
            continue
        }
        var e PriceEntry
        if err := json.Unmarshal(msg, &e); err != nil {
            return fmt.Errorf("ticket type %q: %w", key, err)
        }
        out.Tickets[key] = e
    }
    *p = out
    return nil
}

// MarshalJSON writes the flat layout read by UnmarshalJSON.
func (p PriceTable) MarshalJSON() ([]byte, error) {
    flat := make(map[string]any, len(p.Tickets)+1)
    for k, v := range p.Tickets {
        flat[k] = v
    }
    extras := p.Extras
    if extras == nil {
        extras = map[string]PriceEntry{}
    }
    flat[extrasKey] = extras
    return json.Marshal(flat)
}
