package events

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
)

// ImportCompletedEvent is published after every import attempt for the
// audit trail, whether or not the submission succeeded.
type ImportCompletedEvent struct {
	EventID         string    `json:"event_id"`
	TenantID        string    `json:"tenant_id"`
	CategoryID      string    `json:"category_id"`
	Mode            string    `json:"mode"`
	Filename        string    `json:"filename"`
	TotalRows       int       `json:"total_rows"`
	ValidRows       int       `json:"valid_rows"`
	InvalidRows     int       `json:"invalid_rows"`
	ProductCount    int       `json:"product_count"`
	VariantCount    int       `json:"variant_count"`
	DroppedVariants int       `json:"dropped_variants"`
	ValidateOnly    bool      `json:"validate_only"`
	Submitted       bool      `json:"submitted"`
	Timestamp       time.Time `json:"timestamp"`
}

// Publisher publishes import audit events to NATS.
type Publisher struct {
	conn   *nats.Conn
	logger *logrus.Entry
}

// NewPublisher connects to NATS using NATS_URL.
func NewPublisher(logger *logrus.Logger) (*Publisher, error) {
	natsURL := os.Getenv("NATS_URL")
	if natsURL == "" {
		return nil, fmt.Errorf("NATS_URL not set")
	}

	conn, err := nats.Connect(natsURL,
		nats.Name("catalog-import-service"),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &Publisher{
		conn:   conn,
		logger: logger.WithField("component", "events.publisher"),
	}, nil
}

// Close closes the NATS connection.
func (p *Publisher) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}

// PublishImportCompleted publishes a catalog.import.completed event
// asynchronously so the import response is never blocked on the broker.
func (p *Publisher) PublishImportCompleted(ctx context.Context, event ImportCompletedEvent) {
	event.EventID = uuid.New().String()
	event.Timestamp = time.Now().UTC()

	go func() {
		data, err := json.Marshal(event)
		if err != nil {
			p.logger.WithError(err).Error("Failed to encode import event")
			return
		}
		if err := p.conn.Publish("catalog.import.completed", data); err != nil {
			p.logger.WithFields(logrus.Fields{
				"tenantID":   event.TenantID,
				"categoryID": event.CategoryID,
			}).WithError(err).Error("Failed to publish import event")
			return
		}
		p.logger.WithFields(logrus.Fields{
			"tenantID":  event.TenantID,
			"totalRows": event.TotalRows,
			"products":  event.ProductCount,
		}).Info("Import event published")
	}()
}
