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

type CommissionRepository interface {
	SaveRule(rule *models.CommissionRule) error
	GetRuleByID(id primitive.ObjectID) (*models.CommissionRule, error)
	GetAllRules() ([]*models.CommissionRule, error)
	GetActiveRules() ([]*models.CommissionRule, error)
	UpdateRule(id primitive.ObjectID, rule *models.CommissionRule) error
	DeleteRule(id primitive.ObjectID) error
}

type MongoCommissionRepository struct {
	collection *mongo.Collection
}

func NewCommissionRepository(client *mongo.Client, dbName, collectionName string) CommissionRepository {
	collection := client.Database(dbName).Collection(collectionName)
	return &MongoCommissionRepository{collection: collection}
}

func (r *MongoCommissionRepository) SaveRule(rule *models.CommissionRule) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rule.ID = primitive.NewObjectID()
	rule.CreatedAt = time.Now()
	rule.UpdatedAt = rule.CreatedAt
	_, err := r.collection.InsertOne(ctx, rule)
	return err
}

func (r *MongoCommissionRepository) GetRuleByID(id primitive.ObjectID) (*models.CommissionRule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var rule models.CommissionRule
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&rule)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *MongoCommissionRepository) GetAllRules() ([]*models.CommissionRule, error) {
	return r.find(bson.M{})
}

func (r *MongoCommissionRepository) GetActiveRules() ([]*models.CommissionRule, error) {
	return r.find(bson.M{"status": models.CommissionRuleActive})
}

func (r *MongoCommissionRepository) find(filter bson.M) ([]*models.CommissionRule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.M{"created_at": 1})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rules []*models.CommissionRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *MongoCommissionRepository) UpdateRule(id primitive.ObjectID, rule *models.CommissionRule) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":           rule.Name,
		"type":           rule.Type,
		"value":          rule.Value,
		"min_amount":     rule.MinAmount,
		"max_amount":     rule.MaxAmount,
		"applicable_to":  rule.ApplicableTo,
		"status":         rule.Status,
		"effective_from": rule.EffectiveFrom,
		"updated_at":     time.Now(),
	}}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

func (r *MongoCommissionRepository) DeleteRule(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
