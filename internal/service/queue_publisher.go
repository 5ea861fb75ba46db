// Package service publishes domain events to RabbitMQ.  Errors are logged
// and returned so callers can ignore failures without interrupting the
// request that triggered the event.
package service

import (
    "context"
    "encoding/json"
    "log"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"

    "github.com/iliyamo/dinosaur-museum/internal/config"
    q "github.com/iliyamo/dinosaur-museum/internal/queue"
)

// ReceiptPublisher sends ReceiptIssuedEvents to the configured queue.  A
// connection is opened per publish; receipts are infrequent enough that a
// long-lived channel is not worth its reconnect handling.
type ReceiptPublisher struct {
    cfg config.EventsConfig
}

// NewReceiptPublisher returns a publisher for cfg.
func NewReceiptPublisher(cfg config.EventsConfig) *ReceiptPublisher {
    return &ReceiptPublisher{cfg: cfg}
}

// PublishReceiptIssued publishes the event as a persistent JSON message.
// It never panics; any error is logged and returned.
func (p *ReceiptPublisher) PublishReceiptIssued(ctx context.Context, event q.ReceiptIssuedEvent) error {
    conn, err := amqp.Dial(p.cfg.URL)
    if err != nil {
        log.Printf("rabbitmq: dial failed: %v", err)
        return err
    }
    defer func() { _ = conn.Close() }()

    ch, err := conn.Channel()
    if err != nil {
        log.Printf("rabbitmq: channel open failed: %v", err)
        return err
    }
    defer func() { _ = ch.Close() }()

    // Durable so messages survive broker restarts.
    if _, err := ch.QueueDeclare(p.cfg.Queue, true, false, false, false, nil); err != nil {
        log.Printf("rabbitmq: queue declare failed: %v", err)
        return err
    }

    body, err := json.Marshal(event)
    if err != nil {
        log.Printf("rabbitmq: marshal event failed: %v", err)
        return err
    }

    pub := amqp.Publishing{
        ContentType:  "application/json",
        DeliveryMode: amqp.Persistent,
        MessageId:    event.ReceiptID,
        Timestamp:    time.Now().UTC(),
        Body:         body,
    }
    if err := ch.PublishWithContext(ctx,
        "",          // default exchange
        p.cfg.Queue, // routing key = queue name
        false,       // mandatory
        false,       // immediate
        pub,
    ); err != nil {
        log.Printf("rabbitmq: publish failed: %v", err)
        return err
    }
    return nil
}
