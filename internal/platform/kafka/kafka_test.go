package kafka

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unreachable never accepts connections; kgo only dials lazily.
const unreachable = "127.0.0.1:1"

func TestConstructorsRequireBrokers(t *testing.T) {
	_, err := NewProducer(nil, "topic")
	assert.EqualError(t, err, "kafka producer requires at least one broker")

	_, err = NewConsumer(nil, "group", "topic", nil)
	assert.EqualError(t, err, "kafka consumer requires at least one broker")
}

func TestPublishJSONRejectsUnencodableValues(t *testing.T) {
	p, err := NewProducer([]string{unreachable}, "cafepos.test")
	require.NoError(t, err)
	defer p.Close()

	err = p.PublishJSON(context.Background(), "pay-1", map[string]any{"bad": make(chan int)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "marshal event")
}

func TestRunStopsWhenContextIsCanceled(t *testing.T) {
	c, err := NewConsumer([]string{unreachable}, "cafepos-test", "cafepos.test", nil)
	require.NoError(t, err)
	defer c.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err = c.Run(ctx, func(context.Context, []byte, []byte) error {
		called = true
		return nil
	})
	assert.NoError(t, err)
	assert.False(t, called)
}
