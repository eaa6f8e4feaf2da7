package service

import (
	"context"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
	"github.com/Astemirdum/biblioteca-service/pkg/kafka"
)

const loanCreatedMessage = "Préstamo registrado y libro marcado como no disponible"

type loanCreated struct {
	ID        int `json:"id"`
	IDLibro   int `json:"id_libro"`
	IDUsuario int `json:"id_usuario"`
}

// CreateLoan stores the loan and marks the book unavailable atomically.
func (s *Service) CreateLoan(ctx context.Context, req model.CreateLoanRequest) (model.Message, error) {
	id, err := s.repo.CreateLoan(ctx, req)
	if err != nil {
		return model.Message{}, err
	}
	s.publish(ctx, kafka.LoanTopic, kafka.EventLoanCreated, loanCreated{
		ID:        id,
		IDLibro:   req.IDLibro,
		IDUsuario: req.IDUsuario,
	})
	return model.NewCreated(loanCreatedMessage, id), nil
}

func (s *Service) ListLoans(ctx context.Context) ([]model.LoanInfo, error) {
	return s.repo.ListLoans(ctx)
}
