package services

import (
	"MediClinica/models"
	"MediClinica/repositories"
	"MediClinica/utils"
	"context"
	"fmt"
)

type UsuarioService interface {
	Create(ctx context.Context, usuario *models.Usuario) (*repositories.UsuarioRow, error)
	GetAll(ctx context.Context) ([]repositories.UsuarioRow, error)
	Update(ctx context.Context, usuario *models.Usuario, contrasena *string) (*repositories.UsuarioRow, error)
	Delete(ctx context.Context, id int64) error
}

type usuarioService struct {
	repo *repositories.UsuarioRepository
}

func NewUsuarioService(repo *repositories.UsuarioRepository) UsuarioService {
	return &usuarioService{repo: repo}
}

// Create hashes the plain-text contraseña before it ever reaches the
// database, then re-reads the joined row.
func (s *usuarioService) Create(ctx context.Context, usuario *models.Usuario) (*repositories.UsuarioRow, error) {
	hashed, err := utils.HashPassword(usuario.Contrasena)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	usuario.Contrasena = hashed

	if err := s.repo.Create(ctx, usuario); err != nil {
		return nil, err
	}
	return s.repo.GetRow(ctx, usuario.ID)
}

func (s *usuarioService) GetAll(ctx context.Context) ([]repositories.UsuarioRow, error) {
	return s.repo.GetAll(ctx)
}

// Update overwrites id_persona, usuario and rol. A nil contrasena preserves
// the stored hash; a non-nil one is hashed and replaces it.
func (s *usuarioService) Update(ctx context.Context, usuario *models.Usuario, contrasena *string) (*repositories.UsuarioRow, error) {
	var contrasenaHash *string
	if contrasena != nil {
		hashed, err := utils.HashPassword(*contrasena)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		contrasenaHash = &hashed
	}

	if err := s.repo.Update(ctx, usuario, contrasenaHash); err != nil {
		return nil, err
	}
	return s.repo.GetRow(ctx, usuario.ID)
}

func (s *usuarioService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
