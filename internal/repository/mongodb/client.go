package mongodb

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"golang.org/x/sync/singleflight"

	"eventline/internal/domain"
)

// Client connection settings. The pool is bounded and both timeouts are
// fixed for the process lifetime; the driver does not queue commands while
// disconnected, so a failed connect surfaces immediately.
const (
	maxPoolSize            = 10
	serverSelectionTimeout = 5 * time.Second
	socketTimeout          = 45 * time.Second
)

// ClientProvider hands out the shared document-store client. Repositories
// call Acquire on every operation; after the first successful connect this is
// a cache hit with no I/O.
type ClientProvider interface {
	Acquire(ctx context.Context) (*mongo.Client, error)
}

// Connector owns the single MongoDB client for the process. Concurrent
// first-use is deduplicated: no matter how many callers race on Acquire, at
// most one connect attempt is in flight, and every waiter gets that attempt's
// outcome. A failed attempt leaves nothing cached, so the next call retries
// from scratch. There is no teardown; the connection lives as long as the
// process.
type Connector struct {
	uri   string
	dial  func(ctx context.Context, uri string) (*mongo.Client, error)
	group singleflight.Group

	mu     sync.RWMutex
	client *mongo.Client
}

// NewConnector returns a Connector for uri. No I/O happens until the first
// Acquire.
func NewConnector(uri string) *Connector {
	return &Connector{uri: uri, dial: dial}
}

// Acquire returns the cached client, or establishes the connection if this is
// the first use.
func (c *Connector) Acquire(ctx context.Context) (*mongo.Client, error) {
	c.mu.RLock()
	client := c.client
	c.mu.RUnlock()
	if client != nil {
		return client, nil
	}

	v, err, _ := c.group.Do("connect", func() (interface{}, error) {
		// Re-check under the flight: a previous winner may have
		// already cached the client.
		c.mu.RLock()
		cached := c.client
		c.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		client, err := c.dial(ctx, c.uri)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.client = client
		c.mu.Unlock()
		return client, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*mongo.Client), nil
}

func dial(ctx context.Context, uri string) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(maxPoolSize).
		SetServerSelectionTimeout(serverSelectionTimeout).
		SetSocketTimeout(socketTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConnection, err)
	}
	// Connect only validates options; ping so an unreachable store fails
	// here rather than on the first query.
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: %v", domain.ErrConnection, err)
	}
	return client, nil
}
