package messaging

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"student-service/internal/events"
	"student-service/internal/metrics"

	"github.com/nats-io/nats.go"
)

type Producer struct {
	conn    *nats.Conn
	subject string
	logger  *slog.Logger
	metrics *metrics.MessagingMetrics
}

func NewProducer(url string, subject string, logger *slog.Logger, m *metrics.MessagingMetrics) (*Producer, error) {
	nc, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}

	logger.Info("NATS producer initialized", "url", url, "subject", subject)

	return &Producer{
		conn:    nc,
		subject: subject,
		logger:  logger,
		metrics: m,
	}, nil
}

// Publish sends the event on "<subject>.<event type>" so consumers can
// subscribe to a single lifecycle step.
func (p *Producer) Publish(ctx context.Context, event events.StudentEvent) error {
	start := time.Now()
	subject := p.subject + "." + string(event.Type)

	payload, err := json.Marshal(event)
	if err == nil {
		err = p.conn.Publish(subject, payload)
	}

	p.metrics.RecordPublish(ctx, "nats", subject, time.Since(start), err)

	if err != nil {
		p.logger.ErrorContext(ctx, "failed to publish student event", "subject", subject, "error", err)
		return err
	}

	p.logger.DebugContext(ctx, "student event published", "subject", subject, "event_id", event.EventID)
	return nil
}

func (p *Producer) Close() error {
	return p.conn.Drain()
}
