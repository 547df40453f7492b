package storage

import (
	"context"
	"time"
)

// StorageService defines the interface for media storage operations.
type StorageService interface {
	// UploadFile uploads a local file into the given folder and returns the
	// permanent public identifier.
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	// DeleteFile removes a file given its public ID.
	DeleteFile(ctx context.Context, publicID string) error
	// GetDownloadURL constructs a delivery URL for a stored file.
	GetDownloadURL(ctx context.Context, resourceType, publicID string, expires time.Duration) (string, error)
}
