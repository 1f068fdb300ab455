package services

import (
	"MediClinica/models"
	"MediClinica/repositories"
	"context"
)

type PersonaService interface {
	Create(ctx context.Context, persona *models.Persona) (*models.Persona, error)
	GetAll(ctx context.Context) ([]models.Persona, error)
	Update(ctx context.Context, persona *models.Persona) (*models.Persona, error)
	Delete(ctx context.Context, id int64) error
}

type personaService struct {
	repo *repositories.PersonaRepository
}

func NewPersonaService(repo *repositories.PersonaRepository) PersonaService {
	return &personaService{repo: repo}
}

// Create inserts the persona and re-reads it so the caller gets the row as
// stored, id included.
func (s *personaService) Create(ctx context.Context, persona *models.Persona) (*models.Persona, error) {
	if err := s.repo.Create(ctx, persona); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, persona.ID)
}

func (s *personaService) GetAll(ctx context.Context) ([]models.Persona, error) {
	return s.repo.GetAll(ctx)
}

func (s *personaService) Update(ctx context.Context, persona *models.Persona) (*models.Persona, error) {
	if err := s.repo.Update(ctx, persona); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, persona.ID)
}

func (s *personaService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
