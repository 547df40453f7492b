package notification

import (
	"context"
	"fmt"

	providerRepo "taily/database/repository/provider"
	userRepo "taily/database/repository/user"
	"taily/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	SendUserPushNotification(ctx context.Context, userID, title, body string, data map[string]string) error
	SendProviderPushNotification(ctx context.Context, providerID, title, body string, data map[string]string) error
}

// DefaultNotificationService is the production implementation. When the FCM
// client is not configured, sends become no-ops so booking flows still work
// in environments without Firebase credentials.
type DefaultNotificationService struct {
	UserRepo     userRepo.UserRepository
	ProviderRepo providerRepo.ProviderRepository
}

func NewDefaultNotificationService(
	users userRepo.UserRepository,
	providers providerRepo.ProviderRepository,
) (*DefaultNotificationService, error) {
	if users == nil || providers == nil {
		return nil, fmt.Errorf("notification service initialization error: repository is nil")
	}
	return &DefaultNotificationService{
		UserRepo:     users,
		ProviderRepo: providers,
	}, nil
}

// SendUserPushNotification looks up a user's FCM token and sends a push.
func (s *DefaultNotificationService) SendUserPushNotification(
	ctx context.Context,
	userID, title, body string,
	data map[string]string,
) error {
	if utils.FCMClient == nil {
		utils.GetLogger().Debug("Push disabled, dropping notification", zap.String("userID", userID))
		return nil
	}

	u, err := s.UserRepo.GetByID(userID)
	if err != nil {
		return fmt.Errorf("SendUserPushNotification: could not find user %s: %w", userID, err)
	}
	if u.FCMToken == "" {
		return fmt.Errorf("SendUserPushNotification: user %s has no FCM token", userID)
	}

	return s.send(ctx, u.FCMToken, title, body, data)
}

// SendProviderPushNotification resolves the provider's owner account and
// pushes to its device.
func (s *DefaultNotificationService) SendProviderPushNotification(
	ctx context.Context,
	providerID, title, body string,
	data map[string]string,
) error {
	if utils.FCMClient == nil {
		utils.GetLogger().Debug("Push disabled, dropping notification", zap.String("providerID", providerID))
		return nil
	}

	p, err := s.ProviderRepo.GetByID(providerID)
	if err != nil {
		return fmt.Errorf("SendProviderPushNotification: could not find provider %s: %w", providerID, err)
	}
	owner, err := s.UserRepo.GetByID(p.UserID)
	if err != nil {
		return fmt.Errorf("SendProviderPushNotification: could not find owner of provider %s: %w", providerID, err)
	}
	if owner.FCMToken == "" {
		return fmt.Errorf("SendProviderPushNotification: provider %s owner has no FCM token", providerID)
	}

	return s.send(ctx, owner.FCMToken, title, body, data)
}

func (s *DefaultNotificationService) send(ctx context.Context, token, title, body string, data map[string]string) error {
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	response, err := utils.FCMClient.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}
	utils.GetLogger().Debug("FCM message sent", zap.String("response", response))
	return nil
}
