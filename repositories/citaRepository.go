package repositories

import (
	"MediClinica/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// CitaRow is the joined read shape for citas: the cita columns plus the
// display names of the paciente and the doctor, resolved through their
// personas.
type CitaRow struct {
	IDCita            int64   `gorm:"column:id_cita" json:"id_cita"`
	IDPaciente        int64   `gorm:"column:id_paciente" json:"id_paciente"`
	IDDoctor          int64   `gorm:"column:id_doctor" json:"id_doctor"`
	Fecha             string  `gorm:"column:fecha" json:"fecha"`
	Hora              string  `gorm:"column:hora" json:"hora"`
	Motivo            *string `gorm:"column:motivo" json:"motivo"`
	Estado            string  `gorm:"column:estado" json:"estado"`
	PacienteNombres   string  `gorm:"column:paciente_nombres" json:"paciente_nombres"`
	PacienteApellidos string  `gorm:"column:paciente_apellidos" json:"paciente_apellidos"`
	DoctorNombres     string  `gorm:"column:doctor_nombres" json:"doctor_nombres"`
	DoctorApellidos   string  `gorm:"column:doctor_apellidos" json:"doctor_apellidos"`
}

type CitaRepository struct {
	db *gorm.DB
}

func NewCitaRepository(db *gorm.DB) *CitaRepository {
	return &CitaRepository{db: db}
}

func (r *CitaRepository) Create(ctx context.Context, cita *models.Cita) error {
	if err := r.db.WithContext(ctx).Create(cita).Error; err != nil {
		return fmt.Errorf("failed to create cita: %w", err)
	}
	return nil
}

func (r *CitaRepository) citaRows(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("citas c").
		Select("c.id_cita, c.id_paciente, c.id_doctor, c.fecha, c.hora, c.motivo, c.estado, " +
			"per_pac.nombres AS paciente_nombres, per_pac.apellidos AS paciente_apellidos, " +
			"per_doc.nombres AS doctor_nombres, per_doc.apellidos AS doctor_apellidos").
		Joins("INNER JOIN pacientes pac ON c.id_paciente = pac.id_paciente").
		Joins("INNER JOIN personas per_pac ON pac.id_persona = per_pac.id_persona").
		Joins("INNER JOIN doctores doc ON c.id_doctor = doc.id_doctor").
		Joins("INNER JOIN personas per_doc ON doc.id_persona = per_doc.id_persona")
}

func (r *CitaRepository) GetRow(ctx context.Context, id int64) (*CitaRow, error) {
	var row CitaRow
	err := r.citaRows(ctx).Where("c.id_cita = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cita: %w", err)
	}
	return &row, nil
}

func (r *CitaRepository) GetAll(ctx context.Context) ([]CitaRow, error) {
	rows := make([]CitaRow, 0)
	err := r.citaRows(ctx).Order("c.fecha DESC, c.hora DESC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all citas: %w", err)
	}
	return rows, nil
}

// Update overwrites the mutable columns. estado carries the coalesce merge
// rule: a nil pointer leaves the stored value unchanged, a non-nil one
// overwrites it.
func (r *CitaRepository) Update(ctx context.Context, cita *models.Cita, estado *string) error {
	updates := map[string]interface{}{
		"id_paciente": cita.IDPaciente,
		"id_doctor":   cita.IDDoctor,
		"fecha":       cita.Fecha,
		"hora":        cita.Hora,
		"motivo":      cita.Motivo,
		"estado":      gorm.Expr("COALESCE(?, estado)", estado),
	}
	err := r.db.WithContext(ctx).
		Model(&models.Cita{}).
		Where("id_cita = ?", cita.ID).
		Updates(updates).Error
	if err != nil {
		return fmt.Errorf("failed to update cita: %w", err)
	}
	return nil
}

func (r *CitaRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Cita{}, "id_cita = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete cita: %w", err)
	}
	return nil
}
