package repositories

import (
	"MediClinica/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// DoctorRow is the joined read shape for doctores.
type DoctorRow struct {
	IDDoctor       int64  `gorm:"column:id_doctor" json:"id_doctor"`
	IDPersona      int64  `gorm:"column:id_persona" json:"id_persona"`
	Nombres        string `gorm:"column:nombres" json:"nombres"`
	Apellidos      string `gorm:"column:apellidos" json:"apellidos"`
	DNI            string `gorm:"column:dni" json:"dni"`
	Especialidad   string `gorm:"column:especialidad" json:"especialidad"`
	NroColegiatura string `gorm:"column:nro_colegiatura" json:"nro_colegiatura"`
}

type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

func (r *DoctorRepository) Create(ctx context.Context, doctor *models.Doctor) error {
	if err := r.db.WithContext(ctx).Create(doctor).Error; err != nil {
		return fmt.Errorf("failed to create doctor: %w", err)
	}
	return nil
}

func (r *DoctorRepository) doctorRows(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("doctores d").
		Select("d.id_doctor, d.id_persona, per.nombres, per.apellidos, per.dni, d.especialidad, d.nro_colegiatura").
		Joins("INNER JOIN personas per ON d.id_persona = per.id_persona")
}

func (r *DoctorRepository) GetRow(ctx context.Context, id int64) (*DoctorRow, error) {
	var row DoctorRow
	err := r.doctorRows(ctx).Where("d.id_doctor = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	return &row, nil
}

func (r *DoctorRepository) GetAll(ctx context.Context) ([]DoctorRow, error) {
	rows := make([]DoctorRow, 0)
	err := r.doctorRows(ctx).Order("d.id_doctor DESC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all doctores: %w", err)
	}
	return rows, nil
}

func (r *DoctorRepository) Update(ctx context.Context, doctor *models.Doctor) error {
	err := r.db.WithContext(ctx).
		Model(&models.Doctor{ID: doctor.ID}).
		Select("id_persona", "especialidad", "nro_colegiatura").
		Updates(doctor).Error
	if err != nil {
		return fmt.Errorf("failed to update doctor: %w", err)
	}
	return nil
}

func (r *DoctorRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Doctor{}, "id_doctor = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete doctor: %w", err)
	}
	return nil
}
