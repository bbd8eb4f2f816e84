package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

type Message struct {
	Key   string
	Value any
}

func (m *Message) ToKafkaMessage() (kafkaGo.Message, error) {
	jsonValue, err := json.Marshal(m.Value)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal message value to JSON")

		return kafkaGo.Message{}, fmt.Errorf("failed to marshal message value to JSON: %w", err)
	}

	return kafkaGo.Message{
		Key:   []byte(m.Key),
		Value: jsonValue,
	}, nil
}

// Publisher writes domain events to the configured topic.
type Publisher interface {
	Publish(ctx context.Context, messages ...Message) error
	Close() error
}

type publisherImpl struct {
	writer *kafkaGo.Writer
	otel   otel.Otel
	topic  string
}

// New returns a publisher for Kafka.Topic. When Kafka is disabled events are dropped.
func New(config *config.Config, otel otel.Otel) Publisher {
	if !config.Kafka.Enable || len(config.Kafka.Brokers) == 0 {
		log.Warn().Msg("Kafka disabled, domain events will not be published")

		return noopPublisher{}
	}

	transport := &kafkaGo.Transport{}
	if config.Kafka.SASL.Username != "" {
		transport.SASL = plain.Mechanism{
			Username: config.Kafka.SASL.Username,
			Password: config.Kafka.SASL.Password,
		}
	}

	writer := &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(config.Kafka.Brokers...),
		Topic:                  config.Kafka.Topic,
		Transport:              transport,
		Balancer:               &kafkaGo.Hash{},
		RequiredAcks:           kafkaGo.RequireOne,
		AllowAutoTopicCreation: true,
	}

	log.Info().Strs("brokers", config.Kafka.Brokers).Str("topic", config.Kafka.Topic).Msg("Kafka publisher initialized")

	return &publisherImpl{
		writer: writer,
		otel:   otel,
		topic:  config.Kafka.Topic,
	}
}

func (k *publisherImpl) Publish(ctx context.Context, messages ...Message) (err error) {
	ctx, scope := k.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("messaging.destination", k.topic)

	msgs := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		msg, err := message.ToKafkaMessage()
		if err != nil {
			return fmt.Errorf("failed to convert message to Kafka message: %w", err)
		}

		msgs = append(msgs, msg)
	}

	err = k.writer.WriteMessages(ctx, msgs...)
	if err != nil {
		log.Error().Err(err).Str("topic", k.topic).Msg("Failed to send message to Kafka.")

		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	log.Info().Str("topic", k.topic).Int("count", len(msgs)).Msg("Sent message successfully.")

	return nil
}

func (k *publisherImpl) Close() error {
	return k.writer.Close() //nolint:wrapcheck
}

type noopPublisher struct{}

func (noopPublisher) Publish(_ context.Context, messages ...Message) error {
	log.Debug().Int("count", len(messages)).Msg("Kafka disabled, dropping messages")

	return nil
}

func (noopPublisher) Close() error {
	return nil
}
