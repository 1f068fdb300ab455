package repositories

import (
	"MediClinica/database"
	"MediClinica/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type PersonaRepository struct {
	db     *gorm.DB
	locker *database.Locker
}

func NewPersonaRepository(db *gorm.DB, locker *database.Locker) *PersonaRepository {
	return &PersonaRepository{db: db, locker: locker}
}

// Create inserts a new persona. The dni uniqueness pre-check runs under a
// distributed lock so concurrent creates with the same dni cannot race past
// each other.
func (r *PersonaRepository) Create(ctx context.Context, persona *models.Persona) error {
	lockKey := fmt.Sprintf("persona_lock:%s", persona.DNI)
	return withLock(ctx, r.locker, lockKey, func() error {
		var existing models.Persona
		err := r.db.WithContext(ctx).Where("dni = ?", persona.DNI).First(&existing).Error
		if err == nil {
			return fmt.Errorf("ya existe una persona con dni %s", persona.DNI)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check for existing persona: %w", err)
		}

		if err := r.db.WithContext(ctx).Create(persona).Error; err != nil {
			return fmt.Errorf("failed to create persona: %w", err)
		}
		return nil
	})
}

func (r *PersonaRepository) GetByID(ctx context.Context, id int64) (*models.Persona, error) {
	var persona models.Persona
	err := r.db.WithContext(ctx).First(&persona, "id_persona = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get persona: %w", err)
	}
	return &persona, nil
}

func (r *PersonaRepository) GetAll(ctx context.Context) ([]models.Persona, error) {
	personas := make([]models.Persona, 0)
	err := r.db.WithContext(ctx).
		Order("id_persona DESC").
		Find(&personas).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all personas: %w", err)
	}
	return personas, nil
}

// Update overwrites every mutable column. The explicit Select makes GORM
// write NULL for nil optional fields instead of skipping them.
func (r *PersonaRepository) Update(ctx context.Context, persona *models.Persona) error {
	err := r.db.WithContext(ctx).
		Model(&models.Persona{ID: persona.ID}).
		Select("nombres", "apellidos", "dni", "telefono", "direccion", "fecha_nacimiento").
		Updates(persona).Error
	if err != nil {
		return fmt.Errorf("failed to update persona: %w", err)
	}
	return nil
}

func (r *PersonaRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Persona{}, "id_persona = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete persona: %w", err)
	}
	return nil
}
