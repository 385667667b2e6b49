// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/MKhiriev/sandbox-token/internal/config"
	"github.com/MKhiriev/sandbox-token/internal/logger"
)

// appName is reported to the server in the connection handshake.
const appName = "sandbox-token"

// MongoDB is a live connection to the configuration database.
type MongoDB struct {
	client     *mongo.Client
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewConnectMongo connects to MongoDB with the URI derived from cfg and pings
// the primary so that an unreachable server is reported here rather than on
// the first query. timeout bounds server selection.
//
// Any failure is wrapped in [ErrConnection].
func NewConnectMongo(ctx context.Context, cfg config.Mongo, timeout time.Duration, log *logger.Logger) (*MongoDB, error) {
	opts := options.Client().
		ApplyURI(cfg.ConnectionURI()).
		SetAppName(appName)
	if timeout > 0 {
		opts.SetServerSelectionTimeout(timeout).SetConnectTimeout(timeout)
	}

	client, err := mongo.Connect(opts)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error creating mongo client")
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting database (ping)")
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}
	log.Debug().
		Str("func", "NewConnectMongo").
		Str("database", cfg.Database).
		Str("collection", cfg.Collection).
		Msg("connected to mongo successfully")

	return &MongoDB{
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
		logger:     log,
	}, nil
}

// Close disconnects the client.
func (db *MongoDB) Close(ctx context.Context) error {
	if err := db.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("error disconnecting from mongo: %w", err)
	}

	return nil
}
