package ticket

import (
    "fmt"
    "strings"
    "unicode"
    "unicode/utf8"

    "github.com/iliyamo/dinosaur-museum/internal/model"
)

const (
    receiptHeader    = "Thank you for visiting the Dinosaur Museum!"
    receiptSeparator = "-------------------------------------------"
)

// Line is one priced ticket on a receipt.
type Line struct {
    EntrantType       string   `json:"entrant_type"`
    TicketDescription string   `json:"ticket_description"`
    Cents             int      `json:"price_cents"`
    Extras            []string `json:"extras"`
}

// String renders the line as "Adult General Admission: $50.00 (Movie Access)".
func (l Line) String() string {
    var b strings.Builder
    b.WriteString(capitalize(l.EntrantType))
    b.WriteString(" ")
    b.WriteString(l.TicketDescription)
    b.WriteString(": ")
    b.WriteString(FormatDollars(l.Cents))
    if len(l.Extras) > 0 {
        b.WriteString(" (")
        b.WriteString(strings.Join(l.Extras, ", "))
        b.WriteString(")")
    }
    return b.String()
}

// Receipt is the outcome of a purchase.  When Err is set the purchase
// was rejected and Lines is empty.
type Receipt struct {
    Lines      []Line
    TotalCents int
    Err        error
}

// OK reports whether every ticket in the purchase was priced.
func (r Receipt) OK() bool { return r.Err == nil }

// String renders the printable receipt, or the failure message.
func (r Receipt) String() string {
    if r.Err != nil {
        return r.Err.Error()
    }
    var b strings.Builder
    b.WriteString(receiptHeader + "\n")
    b.WriteString(receiptSeparator + "\n")
    for _, l := range r.Lines {
        b.WriteString(l.String())
        b.WriteString("\n")
    }
    b.WriteString(receiptSeparator + "\n")
    b.WriteString("TOTAL: " + FormatDollars(r.TotalCents))
    return b.String()
}

// BuildReceipt prices every purchase in order.  The first purchase that
// fails to price aborts the whole receipt.
func BuildReceipt(table model.PriceTable, purchases []model.TicketInfo) Receipt {
    lines := make([]Line, 0, len(purchases))
    total := 0
    for _, p := range purchases {
        res := Price(table, p)
        if !res.OK() {
            return Receipt{Err: res.Err}
        }
        total += res.Cents
        extras := make([]string, 0, len(p.Extras))
        for _, name := range p.Extras {
            extras = append(extras, table.Extras[name].Description)
        }
        lines = append(lines, Line{
            EntrantType:       p.EntrantType,
            TicketDescription: table.Tickets[p.TicketType].Description,
            Cents:             res.Cents,
            Extras:            extras,
        })
    }
    return Receipt{Lines: lines, TotalCents: total}
}

// FormatDollars formats cents as "$d.cc".
func FormatDollars(cents int) string {
    sign := ""
    if cents < 0 {
        sign = "-"
        cents = -cents
    }
    return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

// capitalize upper-cases the first letter only; the rest is left as is.
func capitalize(s string) string {
    r, size := utf8.DecodeRuneInString(s)
    if r == utf8.RuneError {
        return s
    }
    return string(unicode.ToUpper(r)) + s[size:]
}
