package repositories

import (
	"MediClinica/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// HistorialRow is the joined read shape for historial_medico entries.
type HistorialRow struct {
	IDHistorial       int64   `gorm:"column:id_historial" json:"id_historial"`
	IDPaciente        int64   `gorm:"column:id_paciente" json:"id_paciente"`
	IDDoctor          int64   `gorm:"column:id_doctor" json:"id_doctor"`
	Fecha             string  `gorm:"column:fecha" json:"fecha"`
	Diagnostico       string  `gorm:"column:diagnostico" json:"diagnostico"`
	Tratamiento       *string `gorm:"column:tratamiento" json:"tratamiento"`
	Receta            *string `gorm:"column:receta" json:"receta"`
	PacienteNombres   string  `gorm:"column:paciente_nombres" json:"paciente_nombres"`
	PacienteApellidos string  `gorm:"column:paciente_apellidos" json:"paciente_apellidos"`
	DoctorNombres     string  `gorm:"column:doctor_nombres" json:"doctor_nombres"`
	DoctorApellidos   string  `gorm:"column:doctor_apellidos" json:"doctor_apellidos"`
}

type HistorialRepository struct {
	db *gorm.DB
}

func NewHistorialRepository(db *gorm.DB) *HistorialRepository {
	return &HistorialRepository{db: db}
}

func (r *HistorialRepository) Create(ctx context.Context, historial *models.HistorialMedico) error {
	if err := r.db.WithContext(ctx).Create(historial).Error; err != nil {
		return fmt.Errorf("failed to create historial: %w", err)
	}
	return nil
}

func (r *HistorialRepository) historialRows(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("historial_medico h").
		Select("h.id_historial, h.id_paciente, h.id_doctor, h.fecha, h.diagnostico, h.tratamiento, h.receta, " +
			"per_pac.nombres AS paciente_nombres, per_pac.apellidos AS paciente_apellidos, " +
			"per_doc.nombres AS doctor_nombres, per_doc.apellidos AS doctor_apellidos").
		Joins("INNER JOIN pacientes pac ON h.id_paciente = pac.id_paciente").
		Joins("INNER JOIN personas per_pac ON pac.id_persona = per_pac.id_persona").
		Joins("INNER JOIN doctores doc ON h.id_doctor = doc.id_doctor").
		Joins("INNER JOIN personas per_doc ON doc.id_persona = per_doc.id_persona")
}

func (r *HistorialRepository) GetRow(ctx context.Context, id int64) (*HistorialRow, error) {
	var row HistorialRow
	err := r.historialRows(ctx).Where("h.id_historial = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get historial: %w", err)
	}
	return &row, nil
}

func (r *HistorialRepository) GetAll(ctx context.Context) ([]HistorialRow, error) {
	rows := make([]HistorialRow, 0)
	err := r.historialRows(ctx).Order("h.fecha DESC, h.id_historial DESC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all historial: %w", err)
	}
	return rows, nil
}

func (r *HistorialRepository) Update(ctx context.Context, historial *models.HistorialMedico) error {
	err := r.db.WithContext(ctx).
		Model(&models.HistorialMedico{ID: historial.ID}).
		Select("id_paciente", "id_doctor", "fecha", "diagnostico", "tratamiento", "receta").
		Updates(historial).Error
	if err != nil {
		return fmt.Errorf("failed to update historial: %w", err)
	}
	return nil
}

func (r *HistorialRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.HistorialMedico{}, "id_historial = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete historial: %w", err)
	}
	return nil
}
