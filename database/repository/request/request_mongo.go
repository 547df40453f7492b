package requestRepo

import (
	"context"
	"fmt"
	"time"

	"taily/database"
	"taily/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRequestRepo implements RequestRepository using MongoDB.
type MongoRequestRepo struct {
	coll *mongo.Collection
}

// NewMongoRequestRepo creates a new instance of RequestRepository using MongoDB.
func NewMongoRequestRepo() RequestRepository {
	coll := database.DB().Collection("Requests")
	repo := &MongoRequestRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoRequestRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a request by its unique ID. Returns nil when absent.
func (r *MongoRequestRepo) GetByID(id string) (*models.Request, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var req models.Request
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&req); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch request with id %s: %w", id, err)
	}
	return &req, nil
}

// GetAll retrieves all submitted requests, newest first.
func (r *MongoRequestRepo) GetAll() ([]models.Request, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve requests: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []models.Request
	for cursor.Next(ctx) {
		var req models.Request
		if err := cursor.Decode(&req); err != nil {
			return nil, fmt.Errorf("failed to decode request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, nil
}

// Create inserts a new request document.
func (r *MongoRequestRepo) Create(request *models.Request) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	request.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, request)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return nil
}

// UpdateStatus overwrites the request's status field.
func (r *MongoRequestRepo) UpdateStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"status": status}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update request %s status: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("request with id %s not found", id)
	}
	return nil
}

// Delete removes a request document by its ID.
func (r *MongoRequestRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete request with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("request with id %s not found", id)
	}
	return nil
}
