package handler

import (
    "context"
    "log"
    "net/http"
    "time"

    "github.com/google/uuid"
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/dinosaur-museum/internal/catalog"
    "github.com/iliyamo/dinosaur-museum/internal/model"
    "github.com/iliyamo/dinosaur-museum/internal/queue"
    "github.com/iliyamo/dinosaur-museum/internal/ticket"
)

// ReceiptPublisher is satisfied by service.ReceiptPublisher.
type ReceiptPublisher interface {
    PublishReceiptIssued(ctx context.Context, event queue.ReceiptIssuedEvent) error
}

// TicketHandler prices tickets and issues receipts against the current
// price table.  Publisher may be nil, in which case no events are sent.
type TicketHandler struct {
    Catalog   *catalog.Catalog
    Publisher ReceiptPublisher

    // publishTimeout bounds the background publish of a receipt event.
    publishTimeout time.Duration
}

// NewTicketHandler panics if cat is nil.
func NewTicketHandler(cat *catalog.Catalog, pub ReceiptPublisher) *TicketHandler {
    if cat == nil {
        panic("nil catalog passed to NewTicketHandler")
    }
    return &TicketHandler{Catalog: cat, Publisher: pub, publishTimeout: 5 * time.Second}
}

type purchaseReq struct {
    Purchases []model.TicketInfo `json:"purchases"`
}

type receiptResp struct {
    ReceiptID  string        `json:"receipt_id"`
    Lines      []ticket.Line `json:"lines"`
    TotalCents int           `json:"total_cents"`
    Text       string        `json:"text"`
}

// Prices handles GET /v1/tickets/prices.
func (h *TicketHandler) Prices(c echo.Context) error {
    return c.JSON(http.StatusOK, h.Catalog.PriceTable())
}

// Price handles POST /v1/tickets/price.  An unknown ticket type, entrant
// type or extra is a 422 carrying the exact failure sentence.
func (h *TicketHandler) Price(c echo.Context) error {
    var info model.TicketInfo
    if err := c.Bind(&info); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    res := ticket.Price(h.Catalog.PriceTable(), info)
    if !res.OK() {
        return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": res.Message()})
    }
    return c.JSON(http.StatusOK, echo.Map{"price_cents": res.Cents})
}

// Receipt handles POST /v1/tickets/receipt.  The printable receipt is
// returned as text/plain unless ?format=json is given.  If any purchase
// fails to price, nothing but its failure sentence is returned.
func (h *TicketHandler) Receipt(c echo.Context) error {
    var body purchaseReq
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if len(body.Purchases) == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "purchases is required"})
    }
    r := ticket.BuildReceipt(h.Catalog.PriceTable(), body.Purchases)
    if !r.OK() {
        return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": r.String()})
    }

    id := uuid.NewString()
    h.publish(id, r)
    c.Response().Header().Set("X-Receipt-ID", id)

    if c.QueryParam("format") == "json" {
        return c.JSON(http.StatusOK, receiptResp{
            ReceiptID:  id,
            Lines:      r.Lines,
            TotalCents: r.TotalCents,
            Text:       r.String(),
        })
    }
    return c.String(http.StatusOK, r.String())
}

// publish sends the receipt event in the background so a slow or
// unreachable broker never delays the visitor's receipt.
func (h *TicketHandler) publish(id string, r ticket.Receipt) {
    if h.Publisher == nil {
        return
    }
    lines := make([]string, 0, len(r.Lines))
    for _, l := range r.Lines {
        lines = append(lines, l.String())
    }
    ev := queue.ReceiptIssuedEvent{
        ReceiptID:  id,
        Lines:      lines,
        Tickets:    len(r.Lines),
        TotalCents: r.TotalCents,
        IssuedAt:   time.Now().UTC().Format(time.RFC3339),
    }
    go func() {
        ctx, cancel := context.WithTimeout(context.Background(), h.publishTimeout)
        defer cancel()
        if err := h.Publisher.PublishReceiptIssued(ctx, ev); err != nil {
            log.Printf("receipt %s: event not published: %v", id, err)
        }
    }()
}
