// Package queue defines message payloads exchanged over the message broker
// and the consumer that records them.
package queue

// ReceiptIssuedEvent is published after a receipt is built for a purchase.
// It carries the rendered lines so downstream consumers can log or
// reconcile sales without access to the price table.
type ReceiptIssuedEvent struct {
    ReceiptID  string   `json:"receipt_id"`
    Lines      []string `json:"lines"`
    Tickets    int      `json:"tickets"`
    TotalCents int      `json:"total_cents"`
    IssuedAt   string   `json:"issued_at"`
}
