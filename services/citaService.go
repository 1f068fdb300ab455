package services

import (
	"MediClinica/models"
	"MediClinica/repositories"
	"MediClinica/utils"
	"context"
	"log"
)

type CitaService interface {
	Create(ctx context.Context, cita *models.Cita) (*repositories.CitaRow, error)
	GetAll(ctx context.Context) ([]repositories.CitaRow, error)
	Update(ctx context.Context, cita *models.Cita, estado *string) (*repositories.CitaRow, error)
	Delete(ctx context.Context, id int64) error
}

type citaService struct {
	repo   *repositories.CitaRepository
	mailer *utils.Mailer
}

// NewCitaService builds the cita service. mailer may be nil; notifications
// are then skipped.
func NewCitaService(repo *repositories.CitaRepository, mailer *utils.Mailer) CitaService {
	return &citaService{repo: repo, mailer: mailer}
}

// Create inserts the cita with the fixed initial estado, whatever the caller
// sent, then re-reads the joined row.
func (s *citaService) Create(ctx context.Context, cita *models.Cita) (*repositories.CitaRow, error) {
	cita.Estado = models.EstadoProgramada
	if err := s.repo.Create(ctx, cita); err != nil {
		return nil, err
	}

	row, err := s.repo.GetRow(ctx, cita.ID)
	if err != nil {
		return nil, err
	}

	if row != nil && s.mailer != nil {
		go s.notify(*row)
	}
	return row, nil
}

func (s *citaService) notify(row repositories.CitaRow) {
	paciente := row.PacienteNombres + " " + row.PacienteApellidos
	doctor := row.DoctorNombres + " " + row.DoctorApellidos
	if err := s.mailer.NotifyCitaCreada(paciente, doctor, row.Fecha, row.Hora); err != nil {
		log.Printf("Failed to send cita notification: %v", err)
	}
}

func (s *citaService) GetAll(ctx context.Context) ([]repositories.CitaRow, error) {
	return s.repo.GetAll(ctx)
}

// Update overwrites the mutable fields; estado nil keeps the stored value.
func (s *citaService) Update(ctx context.Context, cita *models.Cita, estado *string) (*repositories.CitaRow, error) {
	if err := s.repo.Update(ctx, cita, estado); err != nil {
		return nil, err
	}
	return s.repo.GetRow(ctx, cita.ID)
}

func (s *citaService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
