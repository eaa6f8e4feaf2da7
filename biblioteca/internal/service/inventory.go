package service

import (
	"context"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
)

// AvailableBooks lists books with disponible = true.
func (s *Service) AvailableBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.AvailableBooks(ctx)
}
