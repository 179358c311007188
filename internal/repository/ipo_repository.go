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

type IPORepository interface {
	SaveIPO(ipo *models.IPO) error
	UpdateIPO(ipo *models.IPO) error
	GetIPOByID(id primitive.ObjectID) (*models.IPO, error)
	GetAllIPOs() ([]*models.IPO, error)
	GetIPOsByStatus(status models.IPOStatus) ([]*models.IPO, error)
	IncrementSubscribedShares(id primitive.ObjectID, shares int64) error
	CountIPOs() (int64, error)
	CountIPOsByStatus(status models.IPOStatus) (int64, error)
}

type MongoIPORepository struct {
	collection *mongo.Collection
}

func NewIPORepository(client *mongo.Client, dbName, collectionName string) IPORepository {
	collection := client.Database(dbName).Collection(collectionName)
	return &MongoIPORepository{collection: collection}
}

func (r *MongoIPORepository) SaveIPO(ipo *models.IPO) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if ipo.ID.IsZero() {
		ipo.ID = primitive.NewObjectID()
		ipo.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, ipo)
	return err
}

func (r *MongoIPORepository) UpdateIPO(ipo *models.IPO) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": ipo.ID}, ipo)
	return err
}

func (r *MongoIPORepository) GetIPOByID(id primitive.ObjectID) (*models.IPO, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var ipo models.IPO
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&ipo)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ipo, nil
}

func (r *MongoIPORepository) GetAllIPOs() ([]*models.IPO, error) {
	return r.find(bson.M{})
}

func (r *MongoIPORepository) GetIPOsByStatus(status models.IPOStatus) ([]*models.IPO, error) {
	return r.find(bson.M{"status": status})
}

func (r *MongoIPORepository) find(filter bson.M) ([]*models.IPO, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.M{"subscription_start": -1})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var ipos []*models.IPO
	if err := cursor.All(ctx, &ipos); err != nil {
		return nil, err
	}
	return ipos, nil
}

func (r *MongoIPORepository) IncrementSubscribedShares(id primitive.ObjectID, shares int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$inc": bson.M{"shares_subscribed": shares}}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

func (r *MongoIPORepository) CountIPOs() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *MongoIPORepository) CountIPOsByStatus(status models.IPOStatus) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return r.collection.CountDocuments(ctx, bson.M{"status": status})
}
