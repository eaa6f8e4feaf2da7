package service

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/repository"
	"github.com/Astemirdum/biblioteca-service/pkg/auth"
	"github.com/Astemirdum/biblioteca-service/pkg/kafka"
)

type Service struct {
	log       *zap.Logger
	repo      repository.Repository
	publisher kafka.Publisher
	auth      auth.Config

	// lower-cased report type description -> id, swapped whole on reload
	reportTypes atomic.Pointer[map[string]int]
	now         func() time.Time
}

func NewService(repo repository.Repository, publisher kafka.Publisher, authCfg auth.Config, log *zap.Logger) *Service {
	if publisher == nil {
		publisher = kafka.NopPublisher{}
	}
	return &Service{
		log:       log.Named("service"),
		repo:      repo,
		publisher: publisher,
		auth:      authCfg,
		now:       time.Now,
	}
}

// publish never fails the caller; events are best effort.
func (s *Service) publish(ctx context.Context, topic string, typ kafka.EventType, payload any) {
	event := kafka.Event{
		Type:      typ,
		Timestamp: s.now(),
		Payload:   payload,
	}
	if err := s.publisher.Publish(ctx, topic, event); err != nil {
		s.log.Warn("publish", zap.String("topic", topic), zap.String("type", string(typ)), zap.Error(err))
	}
}
