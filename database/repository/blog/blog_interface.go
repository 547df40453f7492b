package blogRepo

import (
	"taily/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BlogRepository defines methods for blog-post data access.
type BlogRepository interface {
	// GetByID retrieves a blog post by its unique ID; nil when absent.
	GetByID(id string) (*models.Blog, error)
	// GetAll retrieves all blog posts, newest first.
	GetAll() ([]models.Blog, error)
	// Create inserts a new blog post.
	Create(blog *models.Blog) error
	// UpdateSetDocument applies a partial $set update to a blog post.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// Delete removes a blog post by its ID.
	Delete(id string) error
}
