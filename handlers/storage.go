package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"taily/services/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StorageHandler handles media uploads for listing photos and blog images.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{StorageSvc: svc}
}

// allowedBuckets defines permitted buckets for uploads.
var allowedBuckets = map[string]bool{
	"listings": true,
	"blogs":    true,
}

// UploadFileHandler handles POST /storage/:bucket. The file lands in a
// bucket-scoped Cloudinary folder and the response carries both the public
// ID and the delivery URL.
func (h *StorageHandler) UploadFileHandler(c *gin.Context) {
	bucket := c.Param("bucket")
	if !allowedBuckets[bucket] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bucket; allowed values are 'listings' and 'blogs'"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempFilePath := tempUploadPath(fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	destFolder := "taily/" + bucket

	publicID, err := h.StorageSvc.UploadFile(c, tempFilePath, destFolder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file", "detail": err.Error()})
		return
	}

	downloadURL, err := h.StorageSvc.GetDownloadURL(c, "image", publicID, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to construct download URL", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"publicId": publicID,
		"url":      downloadURL,
	})
}

// tempUploadPath builds a unique scratch path for an uploaded file. The
// client-supplied name only contributes its extension, so traversal sequences
// and duplicate names cannot touch anything outside the temp dir.
func tempUploadPath(filename string) string {
	ext := filepath.Ext(filepath.Base(filename))
	return filepath.Join(os.TempDir(), uuid.New().String()+ext)
}
