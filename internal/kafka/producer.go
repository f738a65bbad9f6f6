package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"student-service/internal/events"
	"student-service/internal/metrics"

	"github.com/IBM/sarama"
)

type Producer struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
	metrics  *metrics.MessagingMetrics
}

func NewProducer(brokers []string, topic string, logger *slog.Logger, m *metrics.MessagingMetrics) (*Producer, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, err
	}

	logger.Info("kafka producer initialized", "brokers", brokers, "topic", topic)

	return newProducer(producer, topic, logger, m), nil
}

func newProducer(producer sarama.SyncProducer, topic string, logger *slog.Logger, m *metrics.MessagingMetrics) *Producer {
	return &Producer{
		producer: producer,
		topic:    topic,
		logger:   logger,
		metrics:  m,
	}
}

func (p *Producer) SendMessage(key string, value interface{}) error {
	valueBytes, err := json.Marshal(value)
	if err != nil {
		p.logger.Error("failed to marshal message", "error", err)
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(valueBytes),
		Headers: []sarama.RecordHeader{
			{Key: []byte("content-type"), Value: []byte("application/json")},
		},
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.logger.Error("failed to send message to kafka", "error", err)
		return err
	}

	p.logger.Info("message sent to kafka", "topic", p.topic, "partition", partition, "offset", offset, "key", key)
	return nil
}

// Publish keys the message by student id so every event of one student
// lands on the same partition in order.
func (p *Producer) Publish(ctx context.Context, event events.StudentEvent) error {
	start := time.Now()
	err := p.SendMessage(event.StudentID, event)
	p.metrics.RecordPublish(ctx, "kafka", p.topic, time.Since(start), err)
	return err
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
