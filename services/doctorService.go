package services

import (
	"MediClinica/models"
	"MediClinica/repositories"
	"context"
)

type DoctorService interface {
	Create(ctx context.Context, doctor *models.Doctor) (*repositories.DoctorRow, error)
	GetAll(ctx context.Context) ([]repositories.DoctorRow, error)
	Update(ctx context.Context, doctor *models.Doctor) (*repositories.DoctorRow, error)
	Delete(ctx context.Context, id int64) error
}

type doctorService struct {
	repo *repositories.DoctorRepository
}

func NewDoctorService(repo *repositories.DoctorRepository) DoctorService {
	return &doctorService{repo: repo}
}

func (s *doctorService) Create(ctx context.Context, doctor *models.Doctor) (*repositories.DoctorRow, error) {
	if err := s.repo.Create(ctx, doctor); err != nil {
		return nil, err
	}
	return s.repo.GetRow(ctx, doctor.ID)
}

func (s *doctorService) GetAll(ctx context.Context) ([]repositories.DoctorRow, error) {
	return s.repo.GetAll(ctx)
}

func (s *doctorService) Update(ctx context.Context, doctor *models.Doctor) (*repositories.DoctorRow, error) {
	if err := s.repo.Update(ctx, doctor); err != nil {
		return nil, err
	}
	return s.repo.GetRow(ctx, doctor.ID)
}

func (s *doctorService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
