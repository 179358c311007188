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

type DocumentRepository interface {
	SaveDocument(doc *models.Document) error
	GetDocumentByID(id primitive.ObjectID) (*models.Document, error)
	GetAllDocuments() ([]*models.Document, error)
	GetDocumentsByIPO(ipoID primitive.ObjectID) ([]*models.Document, error)
	UpdateStatus(id primitive.ObjectID, status models.DocumentStatus) error
	DeleteDocument(id primitive.ObjectID) error
}

type MongoDocumentRepository struct {
	collection *mongo.Collection
}

func NewDocumentRepository(client *mongo.Client, dbName, collectionName string) DocumentRepository {
	collection := client.Database(dbName).Collection(collectionName)
	return &MongoDocumentRepository{collection: collection}
}

func (r *MongoDocumentRepository) SaveDocument(doc *models.Document) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
		doc.UploadDate = time.Now()
		doc.Version = 1
	}
	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

func (r *MongoDocumentRepository) GetDocumentByID(id primitive.ObjectID) (*models.Document, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var doc models.Document
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *MongoDocumentRepository) GetAllDocuments() ([]*models.Document, error) {
	return r.find(bson.M{})
}

func (r *MongoDocumentRepository) GetDocumentsByIPO(ipoID primitive.ObjectID) ([]*models.Document, error) {
	return r.find(bson.M{"ipo_id": ipoID})
}

func (r *MongoDocumentRepository) find(filter bson.M) ([]*models.Document, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.M{"upload_date": -1})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*models.Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *MongoDocumentRepository) UpdateStatus(id primitive.ObjectID, status models.DocumentStatus) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status}}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

func (r *MongoDocumentRepository) DeleteDocument(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
