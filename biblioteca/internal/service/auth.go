package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/errs"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
	"github.com/Astemirdum/biblioteca-service/pkg/auth"
)

func (s *Service) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	acc, err := s.repo.GetAccount(ctx, req.Usuario)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.LoginResponse{}, errs.ErrInvalidCredentials
		}
		return model.LoginResponse{}, err
	}
	if err := auth.CheckPassword(acc.HashedPassword, req.Password); err != nil {
		s.log.Debug("login rejected", zap.String("usuario", req.Usuario))
		return model.LoginResponse{}, errs.ErrInvalidCredentials
	}

	token, err := auth.IssueToken(s.auth, acc.ID, acc.Usuario, s.now())
	if err != nil {
		return model.LoginResponse{}, errors.Wrap(err, "issue token")
	}
	return model.LoginResponse{
		Mensaje: "Login exitoso",
		Usuario: model.AccountInfo{
			ID:      acc.ID,
			Nombre:  acc.Nombre,
			Usuario: acc.Usuario,
		},
		AccessToken: token,
	}, nil
}

// Authenticate checks a token issued by Login and returns who it belongs to.
func (s *Service) Authenticate(token string) (model.AccountInfo, error) {
	claims, err := auth.ParseToken(s.auth, token)
	if err != nil {
		return model.AccountInfo{}, errors.Wrap(err, "parse token")
	}
	return model.AccountInfo{
		ID:      claims.Profile.ID,
		Usuario: claims.Profile.Username,
	}, nil
}

func (s *Service) Profile(ctx context.Context, username string) (model.AccountInfo, error) {
	acc, err := s.repo.GetAccount(ctx, username)
	if err != nil {
		return model.AccountInfo{}, err
	}
	return model.AccountInfo{
		ID:      acc.ID,
		Nombre:  acc.Nombre,
		Usuario: acc.Usuario,
	}, nil
}
