package repositories

import (
	"MediClinica/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// PacienteRow is the joined read shape for pacientes: the paciente columns
// plus the display fields of the owning persona.
type PacienteRow struct {
	IDPaciente int64   `gorm:"column:id_paciente" json:"id_paciente"`
	IDPersona  int64   `gorm:"column:id_persona" json:"id_persona"`
	Nombres    string  `gorm:"column:nombres" json:"nombres"`
	Apellidos  string  `gorm:"column:apellidos" json:"apellidos"`
	DNI        string  `gorm:"column:dni" json:"dni"`
	TipoSangre *string `gorm:"column:tipo_sangre" json:"tipo_sangre"`
	Alergias   *string `gorm:"column:alergias" json:"alergias"`
}

type PacienteRepository struct {
	db *gorm.DB
}

func NewPacienteRepository(db *gorm.DB) *PacienteRepository {
	return &PacienteRepository{db: db}
}

func (r *PacienteRepository) Create(ctx context.Context, paciente *models.Paciente) error {
	if err := r.db.WithContext(ctx).Create(paciente).Error; err != nil {
		return fmt.Errorf("failed to create paciente: %w", err)
	}
	return nil
}

func (r *PacienteRepository) pacienteRows(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("pacientes p").
		Select("p.id_paciente, p.id_persona, per.nombres, per.apellidos, per.dni, p.tipo_sangre, p.alergias").
		Joins("INNER JOIN personas per ON p.id_persona = per.id_persona")
}

func (r *PacienteRepository) GetRow(ctx context.Context, id int64) (*PacienteRow, error) {
	var row PacienteRow
	err := r.pacienteRows(ctx).Where("p.id_paciente = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get paciente: %w", err)
	}
	return &row, nil
}

func (r *PacienteRepository) GetAll(ctx context.Context) ([]PacienteRow, error) {
	rows := make([]PacienteRow, 0)
	err := r.pacienteRows(ctx).Order("p.id_paciente DESC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all pacientes: %w", err)
	}
	return rows, nil
}

func (r *PacienteRepository) Update(ctx context.Context, paciente *models.Paciente) error {
	err := r.db.WithContext(ctx).
		Model(&models.Paciente{ID: paciente.ID}).
		Select("id_persona", "tipo_sangre", "alergias").
		Updates(paciente).Error
	if err != nil {
		return fmt.Errorf("failed to update paciente: %w", err)
	}
	return nil
}

func (r *PacienteRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Paciente{}, "id_paciente = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete paciente: %w", err)
	}
	return nil
}
