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

type KYCRepository interface {
	SaveSubmission(sub *models.KYCSubmission) error
	UpdateSubmission(sub *models.KYCSubmission) error
	GetSubmissionByID(id primitive.ObjectID) (*models.KYCSubmission, error)
	GetSubmissionsByStatus(status models.KYCReviewStatus) ([]*models.KYCSubmission, error)
	GetAllSubmissions() ([]*models.KYCSubmission, error)
	GetLatestByUserID(userID primitive.ObjectID) (*models.KYCSubmission, error)
	CountByStatus(status models.KYCReviewStatus) (int64, error)
}

type MongoKYCRepository struct {
	collection *mongo.Collection
}

func NewKYCRepository(client *mongo.Client, dbName, collectionName string) KYCRepository {
	collection := client.Database(dbName).Collection(collectionName)
	return &MongoKYCRepository{collection: collection}
}

func (r *MongoKYCRepository) SaveSubmission(sub *models.KYCSubmission) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if sub.ID.IsZero() {
		sub.ID = primitive.NewObjectID()
		sub.SubmittedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, sub)
	return err
}

func (r *MongoKYCRepository) UpdateSubmission(sub *models.KYCSubmission) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": sub.ID}, sub)
	return err
}

func (r *MongoKYCRepository) GetSubmissionByID(id primitive.ObjectID) (*models.KYCSubmission, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var sub models.KYCSubmission
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&sub)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *MongoKYCRepository) GetSubmissionsByStatus(status models.KYCReviewStatus) ([]*models.KYCSubmission, error) {
	return r.find(bson.M{"status": status})
}

func (r *MongoKYCRepository) GetAllSubmissions() ([]*models.KYCSubmission, error) {
	return r.find(bson.M{})
}

func (r *MongoKYCRepository) find(filter bson.M) ([]*models.KYCSubmission, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.M{"submitted_at": -1})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var subs []*models.KYCSubmission
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *MongoKYCRepository) GetLatestByUserID(userID primitive.ObjectID) (*models.KYCSubmission, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	findOptions := options.FindOne().SetSort(bson.M{"submitted_at": -1})
	var sub models.KYCSubmission
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}, findOptions).Decode(&sub)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *MongoKYCRepository) CountByStatus(status models.KYCReviewStatus) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return r.collection.CountDocuments(ctx, bson.M{"status": status})
}
