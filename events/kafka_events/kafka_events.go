package kafka_events

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"

	"github.com/lidofinance/cfp-gateway/events"
)

const (
	kafkaMaxAttempts = 16
)

var _ events.Sink = (*KafkaSink)(nil)

// KafkaSink publishes events keyed by their subject, so every event of one call
// or account lands in the same partition.
type KafkaSink struct {
	writer  *kafka.Writer
	timeout time.Duration
}

func NewKafkaSink(
	brokerEndpoint,
	topic string,
	tlsConfig *tls.Config,
	creds *plain.Mechanism,
	timeout time.Duration,
) *KafkaSink {
	transport := &kafka.Transport{
		Dial: (&net.Dialer{
			Timeout: timeout,
		}).DialContext,
		TLS: tlsConfig,
	}
	if creds != nil {
		transport.SASL = creds
	}

	return &KafkaSink{
		timeout: timeout,
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokerEndpoint),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			MaxAttempts:  kafkaMaxAttempts,
			BatchTimeout: timeout,
			ReadTimeout:  timeout,
			WriteTimeout: timeout,
			Transport:    transport,
		},
	}
}

func (ks *KafkaSink) Publish(evts ...events.Event) error {
	messages, err := toKafkaMessages(evts...)
	if err != nil {
		return fmt.Errorf("failed to convert events: %w", err)
	}

	ctx := context.Background()
	if ks.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, ks.timeout*kafkaMaxAttempts)
		defer cancel()
	}

	if err := ks.writer.WriteMessages(ctx, messages...); err != nil {
		return fmt.Errorf("failed to WriteMessages: %w", err)
	}
	return nil
}

func (ks *KafkaSink) Close() error {
	if err := ks.writer.Close(); err != nil {
		return fmt.Errorf("failed to Close writer: %w", err)
	}
	return nil
}

func toKafkaMessages(evts ...events.Event) ([]kafka.Message, error) {
	messages := make([]kafka.Message, len(evts))
	for i := range evts {
		if evts[i].ID == "" {
			evts[i].ID = uuid.New().String()
		}
		data, err := json.Marshal(evts[i])
		if err != nil {
			return nil, fmt.Errorf("failed to marshal event %s: %w", evts[i].ID, err)
		}
		messages[i] = kafka.Message{Key: []byte(evts[i].Subject), Value: data}
	}
	return messages, nil
}
