package booking

import (
	"context"
	"fmt"
	"time"

	"taily/models"
	"taily/utils"

	"go.uber.org/zap"
)

// allowedTransitions is the forward-only booking lifecycle.
var allowedTransitions = map[string][]string{
	models.BookingPending:  {models.BookingAccepted, models.BookingRejected},
	models.BookingAccepted: {models.BookingCompleted},
}

// CanTransition reports whether the lifecycle permits from -> to.
func CanTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// UpdateBookingStatus applies a lifecycle transition after checking that the
// actor may mutate this booking and that the transition is permitted. Status
// writes belong to the listed sitter; admins bypass the ownership check but
// not the lifecycle itself.
func (s *DefaultBookingService) UpdateBookingStatus(bookingID string, actor Actor, newStatus string) (*models.Booking, error) {
	logger := utils.GetLogger()

	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}

	if !CanTransition(b.Status, newStatus) {
		return nil, &InvalidTransitionError{From: b.Status, To: newStatus}
	}

	switch newStatus {
	case models.BookingAccepted, models.BookingRejected:
		// Only the listed sitter decides on a pending request.
		if err := s.requireProviderOwner(b, actor); err != nil {
			return nil, err
		}
	case models.BookingCompleted:
		if err := s.requireProviderOwner(b, actor); err != nil {
			return nil, err
		}
		if !b.Completable(time.Now()) {
			return nil, ErrNotCompletable
		}
	}

	if err := s.Repo.UpdateStatus(bookingID, newStatus); err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	b.Status = newStatus

	s.afterTransition(b, newStatus)

	logger.Info("Booking status updated",
		zap.String("bookingID", bookingID),
		zap.String("status", newStatus),
		zap.String("actorID", actor.UserID))
	return b, nil
}

// requireProviderOwner checks the actor owns the booking's listing.
func (s *DefaultBookingService) requireProviderOwner(b *models.Booking, actor Actor) error {
	if actor.Role == models.RoleAdmin {
		return nil
	}
	prov, err := s.ProviderRepo.GetByID(b.ProviderID)
	if err != nil {
		return fmt.Errorf("failed to fetch provider %s: %w", b.ProviderID, err)
	}
	if prov.UserID != actor.UserID {
		return ErrForbidden
	}
	return nil
}

// afterTransition runs the side effects of a successful transition: pushes
// to the affected party and, on acceptance, a completion reminder queued for
// the service-window end. Failures here never roll back the transition.
func (s *DefaultBookingService) afterTransition(b *models.Booking, newStatus string) {
	logger := utils.GetLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if s.Notifier != nil {
		var title, body string
		switch newStatus {
		case models.BookingAccepted:
			title, body = "Booking accepted", fmt.Sprintf("%s accepted your %s booking", b.ProviderName, b.ServiceType)
		case models.BookingRejected:
			title, body = "Booking declined", fmt.Sprintf("%s declined your %s booking", b.ProviderName, b.ServiceType)
		case models.BookingCompleted:
			title, body = "Booking completed", "How did it go? Leave a review for your sitter."
		}
		if title != "" {
			if err := s.Notifier.SendUserPushNotification(ctx, b.UserID, title, body,
				map[string]string{"bookingId": b.ID, "status": newStatus}); err != nil {
				logger.Warn("Failed to push booking status update", zap.String("bookingID", b.ID), zap.Error(err))
			}
		}
	}

	if newStatus == models.BookingAccepted && s.Scheduler != nil {
		spec, err := b.DateSpec()
		if err != nil {
			logger.Warn("Cannot schedule reminder for unreadable booking", zap.String("bookingID", b.ID), zap.Error(err))
			return
		}
		payload := models.ReminderPayload{
			BookingID:   b.ID,
			ProviderID:  b.ProviderID,
			ServiceType: b.ServiceType,
			WindowEnd:   spec.WindowEnd(),
		}
		if err := s.Scheduler.ScheduleCompletionReminder(payload); err != nil {
			logger.Warn("Failed to schedule completion reminder", zap.String("bookingID", b.ID), zap.Error(err))
		}
	}
}
