package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Client struct {
	DB *mongo.Database
}

// New connects and pings the deployment within timeout.
func New(ctx context.Context, uri, database string, timeout time.Duration) (*Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	opts := options.Client().
		ApplyURI(uri).
		SetReadPreference(readpref.SecondaryPreferred()).
		SetServerSelectionTimeout(timeout)
	m, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	c := &Client{DB: m.Database(database)}
	if err := c.Ping(ctx); err != nil {
		_ = m.Disconnect(context.Background())
		return nil, err
	}
	return c, nil
}

// Ping checks that a secondary, or the primary when none is up, answers.
func (c *Client) Ping(ctx context.Context) error {
	return c.DB.Client().Ping(ctx, readpref.SecondaryPreferred())
}

func (c *Client) Close(ctx context.Context) error {
	return c.DB.Client().Disconnect(ctx)
}
