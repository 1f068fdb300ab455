package services

import (
	"MediClinica/models"
	"MediClinica/repositories"
	"context"
)

type PacienteService interface {
	Create(ctx context.Context, paciente *models.Paciente) (*repositories.PacienteRow, error)
	GetAll(ctx context.Context) ([]repositories.PacienteRow, error)
	Update(ctx context.Context, paciente *models.Paciente) (*repositories.PacienteRow, error)
	Delete(ctx context.Context, id int64) error
}

type pacienteService struct {
	repo *repositories.PacienteRepository
}

func NewPacienteService(repo *repositories.PacienteRepository) PacienteService {
	return &pacienteService{repo: repo}
}

func (s *pacienteService) Create(ctx context.Context, paciente *models.Paciente) (*repositories.PacienteRow, error) {
	if err := s.repo.Create(ctx, paciente); err != nil {
		return nil, err
	}
	return s.repo.GetRow(ctx, paciente.ID)
}

func (s *pacienteService) GetAll(ctx context.Context) ([]repositories.PacienteRow, error) {
	return s.repo.GetAll(ctx)
}

func (s *pacienteService) Update(ctx context.Context, paciente *models.Paciente) (*repositories.PacienteRow, error) {
	if err := s.repo.Update(ctx, paciente); err != nil {
		return nil, err
	}
	return s.repo.GetRow(ctx, paciente.ID)
}

func (s *pacienteService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
