package repository

import (
	"context"
	"sync"
	"time"

	"github.com/wcib/ipoportal/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The market override is a single logical slot: at most one record exists.
// Every write replaces it under a fixed document key.
const overrideSlotKey = "market_override"

// AuditLogCap bounds the audit log; the oldest entries are evicted first.
const AuditLogCap = 100

type OverrideRepository interface {
	GetOverride() (*models.MarketOverride, error)
	PutOverride(override *models.MarketOverride) error
	RemoveOverride() error
	AppendAudit(entry *models.OverrideAuditEntry) error
	ListAudit(limit int) ([]*models.OverrideAuditEntry, error)
}

type MongoOverrideRepository struct {
	overrides *mongo.Collection
	audit     *mongo.Collection
}

func NewOverrideRepository(client *mongo.Client, dbName string) OverrideRepository {
	db := client.Database(dbName)
	return &MongoOverrideRepository{
		overrides: db.Collection("market_overrides"),
		audit:     db.Collection("override_audit"),
	}
}

func (r *MongoOverrideRepository) GetOverride() (*models.MarketOverride, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var slot struct {
		ID       string                `bson:"_id"`
		Override models.MarketOverride `bson:"override"`
	}
	err := r.overrides.FindOne(ctx, bson.M{"_id": overrideSlotKey}).Decode(&slot)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &slot.Override, nil
}

func (r *MongoOverrideRepository) PutOverride(override *models.MarketOverride) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	slot := bson.M{"_id": overrideSlotKey, "override": override}
	opts := options.Replace().SetUpsert(true)
	_, err := r.overrides.ReplaceOne(ctx, bson.M{"_id": overrideSlotKey}, slot, opts)
	return err
}

func (r *MongoOverrideRepository) RemoveOverride() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.overrides.DeleteOne(ctx, bson.M{"_id": overrideSlotKey})
	return err
}

func (r *MongoOverrideRepository) AppendAudit(entry *models.OverrideAuditEntry) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := r.audit.InsertOne(ctx, entry); err != nil {
		return err
	}
	return r.trimAudit(ctx)
}

// trimAudit evicts entries beyond the cap, oldest first.
func (r *MongoOverrideRepository) trimAudit(ctx context.Context) error {
	count, err := r.audit.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count <= AuditLogCap {
		return nil
	}

	excess := count - AuditLogCap
	findOptions := options.Find().SetSort(bson.M{"timestamp": 1}).SetLimit(excess)
	cursor, err := r.audit.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	var oldest []struct {
		ID interface{} `bson:"_id"`
	}
	if err := cursor.All(ctx, &oldest); err != nil {
		return err
	}
	ids := make([]interface{}, len(oldest))
	for i, doc := range oldest {
		ids[i] = doc.ID
	}
	_, err = r.audit.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	return err
}

func (r *MongoOverrideRepository) ListAudit(limit int) ([]*models.OverrideAuditEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.M{"timestamp": -1}).SetLimit(int64(limit))
	cursor, err := r.audit.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*models.OverrideAuditEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// MemoryOverrideRepository keeps the override slot and audit log in memory.
type MemoryOverrideRepository struct {
	mu       sync.Mutex
	override *models.MarketOverride
	audit    []*models.OverrideAuditEntry
}

func NewMemoryOverrideRepository() *MemoryOverrideRepository {
	return &MemoryOverrideRepository{}
}

func (r *MemoryOverrideRepository) GetOverride() (*models.MarketOverride, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.override == nil {
		return nil, nil
	}
	copied := *r.override
	return &copied, nil
}

func (r *MemoryOverrideRepository) PutOverride(override *models.MarketOverride) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *override
	r.override = &copied
	return nil
}

func (r *MemoryOverrideRepository) RemoveOverride() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.override = nil
	return nil
}

func (r *MemoryOverrideRepository) AppendAudit(entry *models.OverrideAuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Newest first, oldest evicted past the cap.
	r.audit = append([]*models.OverrideAuditEntry{entry}, r.audit...)
	if len(r.audit) > AuditLogCap {
		r.audit = r.audit[:AuditLogCap]
	}
	return nil
}

func (r *MemoryOverrideRepository) ListAudit(limit int) ([]*models.OverrideAuditEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if limit > len(r.audit) {
		limit = len(r.audit)
	}
	entries := make([]*models.OverrideAuditEntry, limit)
	copy(entries, r.audit[:limit])
	return entries, nil
}
