// internal/adapters/rabbitmq/channel_pool_test.go
package rabbitmq

import (
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
)

func closedPool() *ChannelPool {
	pool := &ChannelPool{
		channels:  make(chan *amqp.Channel, 1),
		queueName: "order_placed",
	}
	pool.Close()
	return pool
}

func TestChannelPool_CloseIsIdempotent(t *testing.T) {
	pool := closedPool()
	// A second Close must not close the channel again.
	pool.Close()
}

func TestChannelPool_GetAfterCloseFails(t *testing.T) {
	pool := closedPool()
	if _, err := pool.Get(); err == nil {
		t.Error("Get() on a closed pool must return an error")
	}
}

func TestChannelPool_PutNilIsNoOp(t *testing.T) {
	pool := closedPool()
	// A nil channel is dropped before the pool channel is touched; a send
	// on the closed pool channel would panic.
	pool.Put(nil)
}
