// Package dinosaur answers read-only questions about a collection of
// dinosaur records: which one is the longest, how one is described, and
// which ones were alive at a given point in time.  Callers supply the
// records on every call; nothing is cached or mutated.
package dinosaur

import (
    "errors"
    "fmt"
    "strconv"

    "github.com/mitchellh/mapstructure"

    "github.com/iliyamo/dinosaur-museum/internal/model"
)

// FeetPerMeter converts LengthInMeters to feet.
const FeetPerMeter = 3.281

// ErrNoDinosaurs is returned by Longest when the collection is empty.
var ErrNoDinosaurs = errors.New("no dinosaurs to compare")

// Longest is the name and length in feet of the longest dinosaur.
type Longest struct {
    Name         string
    LengthInFeet float64
}

// Map renders the result as the single-entry {name: feet} mapping served
// by the API.
func (l Longest) Map() map[string]float64 {
    return map[string]float64{l.Name: l.LengthInFeet}
}

// FindLongest returns the record with the greatest LengthInMeters.  On a
// tie the earliest record wins.
func FindLongest(records []model.Dinosaur) (Longest, error) {
    if len(records) == 0 {
        return Longest{}, ErrNoDinosaurs
    }
    best := records[0]
    for _, d := range records[1:] {
        if d.LengthInMeters > best.LengthInMeters {
            best = d
        }
    }
    return Longest{Name: best.Name, LengthInFeet: best.LengthInMeters * FeetPerMeter}, nil
}

// NotFoundMessage is the text returned by Describe for an unknown id.
func NotFoundMessage(id string) string {
    return fmt.Sprintf("A dinosaur with an ID of '%s' cannot be found.", id)
}

// Lookup returns the first record with the given id.  A record whose Mya
// range has a missing entry is treated as absent.
func Lookup(records []model.Dinosaur, id string) (model.Dinosaur, bool) {
    for _, d := range records {
        if d.DinosaurID != id {
            continue
        }
        if !d.Mya.Complete() {
            return model.Dinosaur{}, false
        }
        return d, true
    }
    return model.Dinosaur{}, false
}

// Describe returns a two-line description of the dinosaur with the given
// id, or NotFoundMessage(id) when Lookup finds nothing.
func Describe(records []model.Dinosaur, id string) string {
    d, ok := Lookup(records, id)
    if !ok {
        return NotFoundMessage(id)
    }
    return fmt.Sprintf("%s (%s)\n%s It lived in the %s period, over %s million years ago.",
        d.Name, d.Pronunciation, d.Info, d.Period, formatMya(d.Mya[0]))
}

// AliveAt returns one value per dinosaur alive at mya, in input order.  A
// single-value range [E] matches E and E-1 to absorb imprecise extinction
// dates; a two-value range [start, end] matches end <= mya <= start.
//
// With an empty key the dinosaur id is returned.  Otherwise the value of
// the field whose JSON name is key is returned, or nil when no such field
// exists.
func AliveAt(records []model.Dinosaur, mya float64, key string) []any {
    out := make([]any, 0)
    for _, d := range records {
        if !alive(d.Mya, mya) {
            continue
        }
        if key == "" {
            out = append(out, d.DinosaurID)
            continue
        }
        out = append(out, Field(d, key))
    }
    return out
}

func alive(r model.Mya, mya float64) bool {
    if !r.Complete() {
        return false
    }
    if len(r) == 1 {
        return mya == r[0] || mya == r[0]-1
    }
    return mya >= r[1] && mya <= r[0]
}

// Field looks up a record field by its JSON name.  It returns nil when
// the record has no field by that name.
func Field(d model.Dinosaur, key string) any {
    var fields map[string]any
    if err := mapstructure.Decode(d, &fields); err != nil {
        return nil
    }
    v, ok := fields[key]
    if !ok {
        return nil
    }
    return v
}

// formatMya prints whole numbers without a decimal point and keeps the
// shortest exact form otherwise (150, 77.5).
func formatMya(v float64) string {
    return strconv.FormatFloat(v, 'f', -1, 64)
}
