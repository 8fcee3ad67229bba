package repository

import (
	"context"
	"time"

	"patisserie_marketplace/internal/domain/entities"
	"patisserie_marketplace/internal/usecase/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const defaultAuditCollection = "audit_logs"

// AuditLog represents an audit log entry
type AuditLog struct {
	ID        string    `bson:"_id,omitempty"`
	Service   string    `bson:"service"`
	Action    string    `bson:"action"`
	EntityID  string    `bson:"entity_id"`
	Data      bson.M    `bson:"data"`
	CreatedAt time.Time `bson:"created_at"`
}

// AuditMongoRepository appends audit entries to a MongoDB collection.
type AuditMongoRepository struct {
	collection *mongo.Collection
}

var _ interfaces.IAuditLogger = (*AuditMongoRepository)(nil)

func NewAuditMongoRepository(db *mongo.Database, collection string) *AuditMongoRepository {
	return &AuditMongoRepository{collection: db.Collection(tableOrDefault(collection, defaultAuditCollection))}
}

func (m *AuditMongoRepository) Record(ctx context.Context, entry entities.AuditEntry) error {
	log := AuditLog{
		Service:   entry.Service,
		Action:    entry.Action,
		EntityID:  entry.EntityID,
		Data:      bson.M(entry.Data),
		CreatedAt: entry.CreatedAt,
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}
	_, err := m.collection.InsertOne(ctx, log)
	return err
}
