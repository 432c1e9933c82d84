// Package mongo stores operators in a MongoDB collection.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/matzehuels/gatexray/pkg/circuit"
	"github.com/matzehuels/gatexray/pkg/store"
)

// Defaults for Config.
const (
	DefaultDatabase   = "gatexray"
	DefaultCollection = "operators"
	DefaultTimeout    = 10 * time.Second
)

// Config locates the collection.
type Config struct {
	URI        string        `toml:"uri"`
	Database   string        `toml:"database"`
	Collection string        `toml:"collection"`
	Timeout    time.Duration `toml:"-"`
}

func (c Config) withDefaults() Config {
	if c.Database == "" {
		c.Database = DefaultDatabase
	}
	if c.Collection == "" {
		c.Collection = DefaultCollection
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}

// Store is a store.Store backed by MongoDB.
type Store struct {
	client  *mongo.Client
	coll    *mongo.Collection
	timeout time.Duration
}

// New connects to cfg.URI and pings the primary.
func New(ctx context.Context, cfg Config) (*Store, error) {
	cfg = cfg.withDefaults()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI).SetTimeout(cfg.Timeout))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &Store{
		client:  client,
		coll:    client.Database(cfg.Database).Collection(cfg.Collection),
		timeout: cfg.Timeout,
	}, nil
}

func (s *Store) Get(ctx context.Context, id string) (circuit.Operator, error) {
	var op circuit.Operator
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&op)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return circuit.Operator{}, store.NotFound(id)
	}
	if err != nil {
		return circuit.Operator{}, fmt.Errorf("mongo find %s: %w", id, err)
	}
	return op, nil
}

func (s *Store) Put(ctx context.Context, op circuit.Operator) (string, error) {
	op, err := store.Prepare(op)
	if err != nil {
		return "", err
	}
	_, err = s.coll.ReplaceOne(ctx, bson.M{"_id": op.ID}, op, options.Replace().SetUpsert(true))
	if err != nil {
		return "", fmt.Errorf("mongo upsert %s: %w", op.ID, err)
	}
	return op.ID, nil
}

func (s *Store) List(ctx context.Context) ([]circuit.Operator, error) {
	cur, err := s.coll.Find(ctx, bson.D{}, listOptions())
	if err != nil {
		return nil, fmt.Errorf("mongo list: %w", err)
	}
	var ops []circuit.Operator
	if err := cur.All(ctx, &ops); err != nil {
		return nil, fmt.Errorf("mongo list: %w", err)
	}
	return ops, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("mongo delete %s: %w", id, err)
	}
	return nil
}

func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// listOptions sorts the same way store.Less does.
func listOptions() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "title", Value: 1}, {Key: "_id", Value: 1}})
}

var _ store.Store = (*Store)(nil)
