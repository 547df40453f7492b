package handlers

import (
	"errors"
	"net/http"

	"taily/models"
	"taily/services/blog"
	"taily/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BlogHandler exposes the public article reads and the admin authoring
// endpoints.
type BlogHandler struct {
	BlogService blog.BlogService
}

// GetAllBlogsHandler handles GET /blogs.
func (h *BlogHandler) GetAllBlogsHandler(c *gin.Context) {
	blogs, err := h.BlogService.GetAllBlogs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if blogs == nil {
		blogs = []models.Blog{}
	}
	c.JSON(http.StatusOK, blogs)
}

// GetBlogByIDHandler handles GET /blogs/:id.
func (h *BlogHandler) GetBlogByIDHandler(c *gin.Context) {
	b, err := h.BlogService.GetBlogByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, blog.ErrBlogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, b)
}

// CreateBlogHandler handles POST /admin/blogs.
func (h *BlogHandler) CreateBlogHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.Blog
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.BlogService.CreateBlog(&req)
	if err != nil {
		logger.Error("Blog creation failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateBlogHandler handles PUT /admin/blogs/:id.
func (h *BlogHandler) UpdateBlogHandler(c *gin.Context) {
	var req models.Blog
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ID = c.Param("id")

	updated, err := h.BlogService.UpdateBlog(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteBlogHandler handles DELETE /admin/blogs/:id.
func (h *BlogHandler) DeleteBlogHandler(c *gin.Context) {
	if err := h.BlogService.DeleteBlog(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blog deleted"})
}
