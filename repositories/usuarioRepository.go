package repositories

import (
	"MediClinica/database"
	"MediClinica/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// UsuarioRow is the joined read shape for usuarios. The persona side is a
// LEFT JOIN: accounts without a persona keep nil display fields. The stored
// contraseña never appears here.
type UsuarioRow struct {
	IDUsuario int64   `gorm:"column:id_usuario" json:"id_usuario"`
	Usuario   string  `gorm:"column:usuario" json:"usuario"`
	Rol       string  `gorm:"column:rol" json:"rol"`
	IDPersona *int64  `gorm:"column:id_persona" json:"id_persona"`
	Nombres   *string `gorm:"column:nombres" json:"nombres"`
	Apellidos *string `gorm:"column:apellidos" json:"apellidos"`
	DNI       *string `gorm:"column:dni" json:"dni"`
}

// Credenciales is the internal login lookup: the usuario row plus the stored
// hash and the persona display names for the session.
type Credenciales struct {
	IDUsuario  int64   `gorm:"column:id_usuario"`
	Usuario    string  `gorm:"column:usuario"`
	Contrasena string  `gorm:"column:contrasena"`
	Rol        string  `gorm:"column:rol"`
	IDPersona  *int64  `gorm:"column:id_persona"`
	Nombres    *string `gorm:"column:nombres"`
	Apellidos  *string `gorm:"column:apellidos"`
}

type UsuarioRepository struct {
	db     *gorm.DB
	locker *database.Locker
}

func NewUsuarioRepository(db *gorm.DB, locker *database.Locker) *UsuarioRepository {
	return &UsuarioRepository{db: db, locker: locker}
}

// Create inserts a new account under a distributed lock on the username so
// the uniqueness pre-check cannot race a concurrent create.
func (r *UsuarioRepository) Create(ctx context.Context, usuario *models.Usuario) error {
	lockKey := fmt.Sprintf("usuario_lock:%s", usuario.Usuario)
	return withLock(ctx, r.locker, lockKey, func() error {
		var existing models.Usuario
		err := r.db.WithContext(ctx).Where("usuario = ?", usuario.Usuario).First(&existing).Error
		if err == nil {
			return fmt.Errorf("el usuario %s ya existe", usuario.Usuario)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check for existing usuario: %w", err)
		}

		if err := r.db.WithContext(ctx).Create(usuario).Error; err != nil {
			return fmt.Errorf("failed to create usuario: %w", err)
		}
		return nil
	})
}

func (r *UsuarioRepository) usuarioRows(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("usuarios u").
		Select("u.id_usuario, u.usuario, u.rol, u.id_persona, p.nombres, p.apellidos, p.dni").
		Joins("LEFT JOIN personas p ON u.id_persona = p.id_persona")
}

func (r *UsuarioRepository) GetRow(ctx context.Context, id int64) (*UsuarioRow, error) {
	var row UsuarioRow
	err := r.usuarioRows(ctx).Where("u.id_usuario = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get usuario: %w", err)
	}
	return &row, nil
}

func (r *UsuarioRepository) GetAll(ctx context.Context) ([]UsuarioRow, error) {
	rows := make([]UsuarioRow, 0)
	err := r.usuarioRows(ctx).Order("u.id_usuario DESC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all usuarios: %w", err)
	}
	return rows, nil
}

// GetCredenciales resolves a username to its stored credentials for login.
// Returns (nil, nil) when the username is unknown.
func (r *UsuarioRepository) GetCredenciales(ctx context.Context, username string) (*Credenciales, error) {
	var cred Credenciales
	err := r.db.WithContext(ctx).
		Table("usuarios u").
		Select("u.id_usuario, u.usuario, u.contrasena, u.rol, u.id_persona, p.nombres, p.apellidos").
		Joins("LEFT JOIN personas p ON u.id_persona = p.id_persona").
		Where("u.usuario = ?", username).
		Take(&cred).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get credenciales: %w", err)
	}
	return &cred, nil
}

// Update overwrites id_persona, usuario and rol. contrasenaHash carries the
// conditional-secret rule: nil preserves the stored hash, non-nil replaces it.
func (r *UsuarioRepository) Update(ctx context.Context, usuario *models.Usuario, contrasenaHash *string) error {
	updates := map[string]interface{}{
		"id_persona": usuario.IDPersona,
		"usuario":    usuario.Usuario,
		"rol":        usuario.Rol,
	}
	if contrasenaHash != nil {
		updates["contrasena"] = *contrasenaHash
	}

	err := r.db.WithContext(ctx).
		Model(&models.Usuario{}).
		Where("id_usuario = ?", usuario.ID).
		Updates(updates).Error
	if err != nil {
		return fmt.Errorf("failed to update usuario: %w", err)
	}
	return nil
}

func (r *UsuarioRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Usuario{}, "id_usuario = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete usuario: %w", err)
	}
	return nil
}
