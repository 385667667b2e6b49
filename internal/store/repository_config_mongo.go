// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/MKhiriev/sandbox-token/internal/logger"
	"github.com/MKhiriev/sandbox-token/models"
)

// mongoConfigRepository is the MongoDB-backed [SubmissionConfigRepository].
// The submission config is the document of the config collection whose
// "_cls" field equals [models.SubmissionConfigCls].
type mongoConfigRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewMongoConfigRepository constructs a [SubmissionConfigRepository] on top
// of an established [MongoDB] connection.
func NewMongoConfigRepository(db *MongoDB, logger *logger.Logger) SubmissionConfigRepository {
	logger.Debug().Msg("creating mongo submission config repository")
	return &mongoConfigRepository{
		collection: db.collection,
		logger:     logger,
	}
}

func (r *mongoConfigRepository) FindSubmissionConfig(ctx context.Context) (models.SubmissionConfig, bool, error) {
	log := logger.FromContext(ctx)

	var cfg models.SubmissionConfig
	err := r.collection.FindOne(ctx, discriminatorFilter()).Decode(&cfg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.SubmissionConfig{}, false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*mongoConfigRepository.FindSubmissionConfig").Msg("error finding submission config")
		return models.SubmissionConfig{}, false, fmt.Errorf("find submission config: %w", err)
	}

	return cfg, true, nil
}

func (r *mongoConfigRepository) InsertSubmissionConfig(ctx context.Context, cfg models.SubmissionConfig) error {
	log := logger.FromContext(ctx)

	if _, err := r.collection.InsertOne(ctx, cfg); err != nil {
		log.Err(err).Str("func", "*mongoConfigRepository.InsertSubmissionConfig").Msg("error inserting submission config")
		if mongo.IsDuplicateKeyError(err) {
			return ErrConfigAlreadyExists
		}
		return fmt.Errorf("insert submission config: %w", err)
	}

	return nil
}

func (r *mongoConfigRepository) SetSandboxInstances(ctx context.Context, instances []models.SandboxInstance) error {
	log := logger.FromContext(ctx)

	result, err := r.collection.UpdateOne(ctx, discriminatorFilter(), setSandboxInstancesUpdate(instances))
	if err != nil {
		log.Err(err).Str("func", "*mongoConfigRepository.SetSandboxInstances").Msg("error updating sandbox instances")
		return fmt.Errorf("update sandbox instances: %w", err)
	}

	if result.MatchedCount == 0 {
		log.Warn().Str("func", "*mongoConfigRepository.SetSandboxInstances").Msg("no submission config matched the update")
		return ErrConfigNotFound
	}

	return nil
}

// discriminatorFilter selects the submission config document.
func discriminatorFilter() bson.D {
	return bson.D{{Key: "_cls", Value: models.SubmissionConfigCls}}
}

// setSandboxInstancesUpdate replaces only the sandbox list.
func setSandboxInstancesUpdate(instances []models.SandboxInstance) bson.D {
	if instances == nil {
		instances = []models.SandboxInstance{}
	}

	return bson.D{{Key: "$set", Value: bson.D{{Key: "sandboxInstances", Value: instances}}}}
}
