package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/repository"
)

// Records is the list/create/update/delete service over one table.
type Records[T any] struct {
	repo  repository.RecordRepository[T]
	table string
	log   *zap.Logger
}

func NewRecords[T any](repo repository.RecordRepository[T], table string, log *zap.Logger) *Records[T] {
	return &Records[T]{
		repo:  repo,
		table: table,
		log:   log.Named(table),
	}
}

func (s *Records[T]) List(ctx context.Context) ([]T, error) {
	return s.repo.List(ctx)
}

func (s *Records[T]) Create(ctx context.Context, fields model.Fields) (model.Message, error) {
	id, err := s.repo.Create(ctx, fields)
	if err != nil {
		return model.Message{}, err
	}
	s.log.Debug("created", zap.Int("id", id))
	return model.NewCreated(s.table+" creado exitosamente", id), nil
}

func (s *Records[T]) Update(ctx context.Context, id int, fields model.Fields) (model.Message, error) {
	if err := s.repo.Update(ctx, id, fields); err != nil {
		return model.Message{}, err
	}
	return model.NewMessage(s.table + " actualizado"), nil
}

func (s *Records[T]) Delete(ctx context.Context, id int) (model.Message, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return model.Message{}, err
	}
	return model.NewMessage(s.table + " eliminado"), nil
}

func (s *Records[T]) Exists(ctx context.Context, id int) (bool, error) {
	return s.repo.Exists(ctx, id)
}
