package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

// SettlementPublisher stands in for the settlement network: submitted
// payments are published as JSON events instead of being wired to SWIFT.
type SettlementPublisher struct {
	writer *kafka.Writer
}

func NewSettlementPublisher(brokers []string, topic string) *SettlementPublisher {
	return &SettlementPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *SettlementPublisher) PublishSettlement(event SettlementEvent) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(event.PaymentID),
		Value: msg,
		Time:  time.Now(),
	})
}
