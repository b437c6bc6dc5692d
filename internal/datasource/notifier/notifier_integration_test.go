//go:build integration

package notifier_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"cafepos/internal/datasource/notifier"
	"cafepos/pkg/testutil/containers"
)

type RedisMonitorSuite struct {
	suite.Suite
	redis *containers.RedisContainer
}

func TestRedisMonitorSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisMonitorSuite))
}

func (s *RedisMonitorSuite) SetupSuite() {
	s.redis = containers.GetManager().GetRedis(s.T())
}

func (s *RedisMonitorSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisMonitorSuite) TestSubscribersReceiveMonitorMessages() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sub := s.redis.Client.Subscribe(ctx, notifier.MonitorChannel("store-1"))
	defer sub.Close()
	_, err := sub.Receive(ctx)
	s.Require().NoError(err)

	n := notifier.New(notifier.WithRedis(s.redis.Client))
	s.Require().NoError(n.SendMonitorNotification(ctx, "store-1", "Pedido o-1: IN_PREPARATION"))

	msg, err := sub.ReceiveMessage(ctx)
	s.Require().NoError(err)

	var payload notifier.MonitorMessage
	s.Require().NoError(json.Unmarshal([]byte(msg.Payload), &payload))
	s.Equal("store-1", payload.StoreID)
	s.Equal("Pedido o-1: IN_PREPARATION", payload.Message)
}
