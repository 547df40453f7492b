package blogRepo

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

// MongoBlogRepo implements BlogRepository using MongoDB.
type MongoBlogRepo struct {
	coll *mongo.Collection
}

// NewMongoBlogRepo creates a new instance of BlogRepository using MongoDB.
func NewMongoBlogRepo() BlogRepository {
	coll := database.DB().Collection("blogs")
	repo := &MongoBlogRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBlogRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a blog post by its unique ID. Returns nil when absent.
func (r *MongoBlogRepo) GetByID(id string) (*models.Blog, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var blog models.Blog
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&blog); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch blog with id %s: %w", id, err)
	}
	return &blog, nil
}

// GetAll retrieves all blog posts, newest first.
func (r *MongoBlogRepo) GetAll() ([]models.Blog, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve blogs: %w", err)
	}
	defer cursor.Close(ctx)

	var blogs []models.Blog
	for cursor.Next(ctx) {
		var b models.Blog
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode blog: %w", err)
		}
		blogs = append(blogs, b)
	}
	return blogs, nil
}

// Create inserts a new blog post.
func (r *MongoBlogRepo) Create(blog *models.Blog) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	blog.CreatedAt = now
	blog.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, blog)
	if err != nil {
		return fmt.Errorf("failed to create blog: %w", err)
	}
	return nil
}

// UpdateSetDocument applies a partial $set update to a blog post.
func (r *MongoBlogRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updatedAt"] = time.Now()
	update := bson.M{"$set": updateDoc}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update blog with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("blog with id %s not found", id)
	}
	return nil
}

// Delete removes a blog post by its ID.
func (r *MongoBlogRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete blog with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("blog with id %s not found", id)
	}
	return nil
}
