// Package audit records admin mutations (create/update/status/delete) in
// MongoDB. Recording is best-effort: a failed insert never fails the
// mutation that triggered it.
package audit

import (
	"context"
	"time"

	"github.com/example/martadmin/pkg/config"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type Entry struct {
	ID        string    `bson:"_id,omitempty"`
	Resource  string    `bson:"resource"`
	Action    string    `bson:"action"`
	EntityID  string    `bson:"entity_id"`
	CreatedAt time.Time `bson:"created_at"`
}

type Recorder struct {
	client   *mongo.Client
	database *mongo.Database
	config   *config.MongoDBConfig
	logger   *zap.Logger
}

func NewRecorder(cfg *config.MongoDBConfig, logger *zap.Logger) (*Recorder, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}

	return &Recorder{
		client:   client,
		database: client.Database(cfg.Database),
		config:   cfg,
		logger:   logger,
	}, nil
}

func (r *Recorder) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}

func (r *Recorder) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

// Record inserts one trail entry. A nil Recorder is a no-op so callers never
// need to branch on whether auditing is configured.
func (r *Recorder) Record(ctx context.Context, resource, action, entityID string) {
	if r == nil {
		return
	}
	collection := r.database.Collection(r.config.Collection)
	entry := Entry{
		ID:        uuid.NewString(),
		Resource:  resource,
		Action:    action,
		EntityID:  entityID,
		CreatedAt: time.Now(),
	}
	if _, err := collection.InsertOne(ctx, entry); err != nil {
		r.logger.Warn("failed to record audit entry",
			zap.String("resource", resource),
			zap.String("action", action),
			zap.Error(err))
	}
}

// Recent returns the latest entries for one resource, newest first.
func (r *Recorder) Recent(ctx context.Context, resource string, limit int64) ([]Entry, error) {
	collection := r.database.Collection(r.config.Collection)

	filter := bson.M{"resource": resource}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit)

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []Entry
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}
