package requestRepo

import "taily/models"

// RequestRepository defines methods for service-request (lead) data access.
type RequestRepository interface {
	// GetByID retrieves a request by its unique ID; nil when absent.
	GetByID(id string) (*models.Request, error)
	// GetAll retrieves all submitted requests, newest first.
	GetAll() ([]models.Request, error)
	// Create inserts a new request record.
	Create(request *models.Request) error
	// UpdateStatus overwrites the request's status field.
	UpdateStatus(id, status string) error
	// Delete removes a request record by its ID.
	Delete(id string) error
}
