package service

import (
	"context"
	"fmt"
	"time"

	"fundbuddy/internal/domain"
)

// NotificationService serves the user's notification feed. The feed is a
// static fixture for now; there is no delivery pipeline behind it.
type NotificationService interface {
	List(ctx context.Context, email string) []domain.Notification
}

type notificationService struct {
	now func() time.Time
}

func NewNotificationService() NotificationService {
	return &notificationService{now: time.Now}
}

func (s *notificationService) List(_ context.Context, email string) []domain.Notification {
	today := s.now()
	return []domain.Notification{
		{
			ID:        1,
			Message:   fmt.Sprintf("Investimento atualizado para %s.", email),
			Timestamp: today.AddDate(0, 0, -1).Format("2006-01-02"),
		},
		{
			ID:        2,
			Message:   "Seu perfil foi atualizado com sucesso.",
			Timestamp: today.AddDate(0, 0, -2).Format("2006-01-02"),
		},
	}
}
