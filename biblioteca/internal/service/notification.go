package service

import (
	"context"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
)

func (s *Service) CreateNotification(ctx context.Context, req model.NotificationRequest) (model.Message, error) {
	id, err := s.repo.CreateNotification(ctx, req.UsuarioID, req.Mensaje)
	if err != nil {
		return model.Message{}, err
	}
	return model.NewCreated("Notificación creada", id), nil
}

func (s *Service) ListNotifications(ctx context.Context) ([]model.Notification, error) {
	return s.repo.ListNotifications(ctx)
}

func (s *Service) ListUserNotifications(ctx context.Context, userID int) ([]model.Notification, error) {
	return s.repo.ListUserNotifications(ctx, userID)
}

// SendNotification echoes the message back. Nothing is stored; use
// CreateNotification to persist.
func (s *Service) SendNotification(req model.NotificationRequest) model.SentNotification {
	return model.SentNotification{
		IDUsuario: req.UsuarioID,
		Mensaje:   req.Mensaje,
	}
}
