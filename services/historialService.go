package services

import (
	"MediClinica/models"
	"MediClinica/repositories"
	"context"
)

type HistorialService interface {
	Create(ctx context.Context, historial *models.HistorialMedico) (*repositories.HistorialRow, error)
	GetAll(ctx context.Context) ([]repositories.HistorialRow, error)
	Update(ctx context.Context, historial *models.HistorialMedico) (*repositories.HistorialRow, error)
	Delete(ctx context.Context, id int64) error
}

type historialService struct {
	repo *repositories.HistorialRepository
}

func NewHistorialService(repo *repositories.HistorialRepository) HistorialService {
	return &historialService{repo: repo}
}

func (s *historialService) Create(ctx context.Context, historial *models.HistorialMedico) (*repositories.HistorialRow, error) {
	if err := s.repo.Create(ctx, historial); err != nil {
		return nil, err
	}
	return s.repo.GetRow(ctx, historial.ID)
}

func (s *historialService) GetAll(ctx context.Context) ([]repositories.HistorialRow, error) {
	return s.repo.GetAll(ctx)
}

func (s *historialService) Update(ctx context.Context, historial *models.HistorialMedico) (*repositories.HistorialRow, error) {
	if err := s.repo.Update(ctx, historial); err != nil {
		return nil, err
	}
	return s.repo.GetRow(ctx, historial.ID)
}

func (s *historialService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
