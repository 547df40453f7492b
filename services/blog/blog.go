package blog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	blogRepo "taily/database/repository/blog"
	"taily/models"
	"taily/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

var ErrBlogNotFound = errors.New("blog post not found")

// BlogService manages admin-authored articles. Reads are public; writes are
// admin only, enforced at the route level.
type BlogService interface {
	GetAllBlogs() ([]models.Blog, error)
	GetBlogByID(id string) (*models.Blog, error)
	CreateBlog(b *models.Blog) (*models.Blog, error)
	UpdateBlog(b models.Blog) (*models.Blog, error)
	DeleteBlog(id string) error
}

// DefaultBlogService is the production implementation.
type DefaultBlogService struct {
	Repo blogRepo.BlogRepository
}

// GetAllBlogs returns all articles, newest first.
func (s *DefaultBlogService) GetAllBlogs() ([]models.Blog, error) {
	return s.Repo.GetAll()
}

// GetBlogByID returns a single article.
func (s *DefaultBlogService) GetBlogByID(id string) (*models.Blog, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBlogNotFound
	}
	return b, nil
}

// CreateBlog validates and stores a new article.
func (s *DefaultBlogService) CreateBlog(b *models.Blog) (*models.Blog, error) {
	b.Title = strings.TrimSpace(b.Title)
	if b.Title == "" || strings.TrimSpace(b.Content) == "" {
		return nil, fmt.Errorf("title and content are required")
	}

	b.ID = uuid.New().String()
	if b.Date == "" {
		b.Date = time.Now().Format("2006-01-02")
	}

	if err := s.Repo.Create(b); err != nil {
		utils.GetLogger().Error("Failed to create blog", zap.Error(err))
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}
	return b, nil
}

// UpdateBlog updates non-empty article fields using a partial update.
func (s *DefaultBlogService) UpdateBlog(b models.Blog) (*models.Blog, error) {
	if b.ID == "" {
		return nil, fmt.Errorf("blog ID is required for update")
	}

	updateFields := bson.M{}
	if b.Title != "" {
		updateFields["title"] = b.Title
	}
	if b.Excerpt != "" {
		updateFields["excerpt"] = b.Excerpt
	}
	if b.Content != "" {
		updateFields["content"] = b.Content
	}
	if b.Image != "" {
		updateFields["image"] = b.Image
	}
	if b.Date != "" {
		updateFields["date"] = b.Date
	}
	if len(updateFields) == 0 {
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.UpdateSetDocument(b.ID, updateFields); err != nil {
		return nil, fmt.Errorf("failed to update blog: %w", err)
	}
	return s.Repo.GetByID(b.ID)
}

// DeleteBlog removes an article.
func (s *DefaultBlogService) DeleteBlog(id string) error {
	return s.Repo.Delete(id)
}
