package repository

import (
	"context"
	"time"

	"github.com/wcib/ipoportal/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ActivityLogRepository interface {
	SaveLog(log *models.ActivityLog) error
	GetAllLogs(page, limit int) ([]*models.ActivityLog, error)
	GetLogsByUserID(userID primitive.ObjectID, page, limit int) ([]*models.ActivityLog, error)
}

type MongoActivityLogRepository struct {
	collection *mongo.Collection
}

func NewActivityLogRepository(client *mongo.Client, dbName, collectionName string) ActivityLogRepository {
	collection := client.Database(dbName).Collection(collectionName)
	return &MongoActivityLogRepository{collection: collection}
}

func (r *MongoActivityLogRepository) SaveLog(log *models.ActivityLog) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	log.ID = primitive.NewObjectID()
	log.Timestamp = time.Now()
	_, err := r.collection.InsertOne(ctx, log)
	return err
}

func (r *MongoActivityLogRepository) GetAllLogs(page, limit int) ([]*models.ActivityLog, error) {
	return r.find(bson.M{}, page, limit)
}

func (r *MongoActivityLogRepository) GetLogsByUserID(userID primitive.ObjectID, page, limit int) ([]*models.ActivityLog, error) {
	return r.find(bson.M{"user_id": userID}, page, limit)
}

func (r *MongoActivityLogRepository) find(filter bson.M, page, limit int) ([]*models.ActivityLog, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	skip := (page - 1) * limit
	findOptions := options.Find().SetSort(bson.M{"timestamp": -1}).SetSkip(int64(skip)).SetLimit(int64(limit))
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []*models.ActivityLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
