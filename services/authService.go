package services

import (
	"MediClinica/repositories"
	"MediClinica/sessions"
	"MediClinica/utils"
	"context"
	"errors"
)

// ErrCredencialesInvalidas is returned for unknown usernames and wrong
// passwords alike, so a caller cannot probe which usernames exist.
var ErrCredencialesInvalidas = errors.New("usuario o contraseña incorrectos")

type AuthService interface {
	Login(ctx context.Context, usuario, contrasena string) (*sessions.Identity, error)
}

type authService struct {
	repo *repositories.UsuarioRepository
}

func NewAuthService(repo *repositories.UsuarioRepository) AuthService {
	return &authService{repo: repo}
}

// Login verifies the credentials against the stored bcrypt hash and builds
// the identity that the session will carry.
func (s *authService) Login(ctx context.Context, usuario, contrasena string) (*sessions.Identity, error) {
	cred, err := s.repo.GetCredenciales(ctx, usuario)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		return nil, ErrCredencialesInvalidas
	}

	if !utils.CheckPassword(cred.Contrasena, contrasena) {
		return nil, ErrCredencialesInvalidas
	}

	return &sessions.Identity{
		IDUsuario: cred.IDUsuario,
		Usuario:   cred.Usuario,
		Rol:       cred.Rol,
		IDPersona: cred.IDPersona,
		Nombres:   cred.Nombres,
		Apellidos: cred.Apellidos,
	}, nil
}
