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

type InvestmentRepository interface {
	SaveInvestment(inv *models.Investment) error
	UpdateInvestment(inv *models.Investment) error
	GetInvestmentsByUserID(userID primitive.ObjectID) ([]*models.Investment, error)
	CountInvestments() (int64, error)
}

type MongoInvestmentRepository struct {
	collection *mongo.Collection
}

func NewInvestmentRepository(client *mongo.Client, dbName, collectionName string) InvestmentRepository {
	collection := client.Database(dbName).Collection(collectionName)
	return &MongoInvestmentRepository{collection: collection}
}

func (r *MongoInvestmentRepository) SaveInvestment(inv *models.Investment) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if inv.ID.IsZero() {
		inv.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, inv)
	return err
}

func (r *MongoInvestmentRepository) UpdateInvestment(inv *models.Investment) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": inv.ID}, inv)
	return err
}

func (r *MongoInvestmentRepository) GetInvestmentsByUserID(userID primitive.ObjectID) ([]*models.Investment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.M{"subscription_date": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var investments []*models.Investment
	if err := cursor.All(ctx, &investments); err != nil {
		return nil, err
	}
	return investments, nil
}

func (r *MongoInvestmentRepository) CountInvestments() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return r.collection.CountDocuments(ctx, bson.M{})
}
