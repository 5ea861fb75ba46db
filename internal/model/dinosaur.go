package model

import (
    "encoding/json"
    "math"
)

// Dinosaur represents a single record of the museum's dinosaur collection.
// It corresponds to a row in the `dinosaurs` table and to one entry of the
// fixture file.  The mapstructure tags mirror the JSON names so that a
// field can be looked up by the name clients see.
//
// Fields:
//  DinosaurID     – unique identifier.
//  Name           – common name of the dinosaur.
//  Pronunciation  – phonetic spelling of Name.
//  MeaningOfName  – translation of the name.
//  Diet           – carnivorous, herbivorous or omnivorous.
//  LengthInMeters – body length in meters.
//  Period         – geological period name.
//  Mya            – millions-of-years-ago range.
//  Info           – free descriptive text.
type Dinosaur struct {
    DinosaurID     string  `json:"dinosaurId" mapstructure:"dinosaurId"`
    Name           string  `json:"name" mapstructure:"name"`
    Pronunciation  string  `json:"pronunciation" mapstructure:"pronunciation"`
    MeaningOfName  string  `json:"meaningOfName" mapstructure:"meaningOfName"`
    Diet           string  `json:"diet" mapstructure:"diet"`
    LengthInMeters float64 `json:"lengthInMeters" mapstructure:"lengthInMeters"`
    Period         string  `json:"period" mapstructure:"period"`
    Mya            Mya     `json:"mya" mapstructure:"mya"`
    Info           string  `json:"info" mapstructure:"info"`
}

// Mya holds one or two "millions of years ago" values, oldest first.  A
// missing entry is stored as NaN.
type Mya []float64

// Missing is the placeholder for an unknown Mya entry.
var Missing = math.NaN()

// Complete reports whether the range has at least one entry and no
// missing ones.
func (m Mya) Complete() bool {
    if len(m) == 0 {
        return false
    }
    for _, v := range m {
        if math.IsNaN(v) {
            return false
        }
    }
    return true
}

// UnmarshalJSON accepts null entries and records them as missing.
func (m *Mya) UnmarshalJSON(b []byte) error {
    var raw []*float64
    if err := json.Unmarshal(b, &raw); err != nil {
        return err
    }
    out := make(Mya, len(raw))
    for i, v := range raw {
        if v == nil {
            out[i] = Missing
            continue
        }
        out[i] = *v
    }
    *m = out
    return nil
}

// MarshalJSON writes missing entries back as null.
func (m Mya) MarshalJSON() ([]byte, error) {
    raw := make([]*float64, len(m))
    for i := range m {
        if math.IsNaN(m[i]) {
            continue
        }
        v := m[i]
        raw[i] = &v
    }
    return json.Marshal(raw)
}
