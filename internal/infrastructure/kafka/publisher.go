package kafka

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (k *KafkaPublisher) PublishRequestEvent(event domain.RequestEvent) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	// Key by request id so all events of one request land in one partition
	return k.writer.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(event.RequestID), 10)),
		Value: msg,
		Time:  time.Now(),
	})
}

func (k *KafkaPublisher) Close() error {
	return k.writer.Close()
}
