package kafka_test

import (
	"context"
	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel/mocks"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToKafkaMessage(t *testing.T) {
	msg := kafka.Message{Key: "order_1", Value: map[string]int{"rooms": 2}}

	out, err := msg.ToKafkaMessage()
	require.NoError(t, err)
	assert.Equal(t, []byte("order_1"), out.Key)
	assert.JSONEq(t, `{"rooms":2}`, string(out.Value))

	bad := kafka.Message{Key: "k", Value: math.Inf(1)}
	_, err = bad.ToKafkaMessage()
	assert.Error(t, err)
}

func TestDisabledPublisher(t *testing.T) {
	cfg := &config.Config{}

	publisher := kafka.New(cfg, mocks.NewOtel())

	assert.NoError(t, publisher.Publish(context.Background(), kafka.Message{Key: "k", Value: "v"}))
	assert.NoError(t, publisher.Close())
}
