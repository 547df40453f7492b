package request

import (
	"errors"
	"fmt"
	"strings"

	requestRepo "taily/database/repository/request"
	"taily/models"
	"taily/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrRequestNotFound = errors.New("request not found")

// RequestService handles the provider-unspecific "I need a sitter" leads.
// Submission is open to visitors; moderation is admin only.
type RequestService interface {
	SubmitRequest(req *models.Request) (*models.Request, error)
	GetAllRequests() ([]models.Request, error)
	UpdateRequestStatus(id, status string) (*models.Request, error)
	DeleteRequest(id string) error
}

// DefaultRequestService is the production implementation.
type DefaultRequestService struct {
	Repo requestRepo.RequestRepository
}

// SubmitRequest validates and stores a new lead. Requests always start out
// Pending.
func (s *DefaultRequestService) SubmitRequest(req *models.Request) (*models.Request, error) {
	logger := utils.GetLogger()

	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.FullName == "" || req.Email == "" || req.ServiceType == "" {
		return nil, fmt.Errorf("fullName, email and serviceType are required")
	}
	if !req.AcceptedTerms {
		return nil, fmt.Errorf("terms must be accepted")
	}

	switch req.DateInfo.Type {
	case "Custom Range":
		if req.DateInfo.Start == nil || req.DateInfo.End == nil {
			return nil, fmt.Errorf("custom range requires start and end dates")
		}
		if req.DateInfo.End.Before(*req.DateInfo.Start) {
			return nil, fmt.Errorf("end date precedes start date")
		}
	case "Duration":
		if req.DateInfo.Value == "" {
			return nil, fmt.Errorf("duration requests require a value")
		}
	default:
		return nil, fmt.Errorf("unknown date info type %q", req.DateInfo.Type)
	}

	req.ID = uuid.New().String()
	req.Status = models.RequestPending

	if err := s.Repo.Create(req); err != nil {
		logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	logger.Info("Service request submitted", zap.String("requestID", req.ID), zap.String("serviceType", req.ServiceType))
	return req, nil
}

// GetAllRequests returns every submitted lead, newest first (admin view).
func (s *DefaultRequestService) GetAllRequests() ([]models.Request, error) {
	return s.Repo.GetAll()
}

// UpdateRequestStatus moderates a lead. Any of the known statuses may be set
// in any order; moderation decisions are reversible.
func (s *DefaultRequestService) UpdateRequestStatus(id, status string) (*models.Request, error) {
	switch status {
	case models.RequestPending, models.RequestApproved, models.RequestRejected:
	default:
		return nil, fmt.Errorf("unknown request status %q", status)
	}

	req, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, ErrRequestNotFound
	}

	if err := s.Repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	req.Status = status
	return req, nil
}

// DeleteRequest removes a lead (admin view).
func (s *DefaultRequestService) DeleteRequest(id string) error {
	return s.Repo.Delete(id)
}
