package client

import (
	"context"
	"net/http"

	"github.com/smartshoe/pos-api/internal/application/dto"
)

// AuthService login, registro y logout. Login y Register actualizan la
// sesión compartida con el token recibido.
type AuthService struct {
	session *Session
}

// Login autentica y guarda token + usuario en la sesión.
func (s *AuthService) Login(ctx context.Context, username, password string) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	err := s.session.do(ctx, http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Username: username, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	s.session.SetAuth(out.AccessToken, out.User)
	return &out, nil
}

// Register crea el usuario y deja la sesión autenticada.
func (s *AuthService) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	if err := s.session.do(ctx, http.MethodPost, "/api/auth/register", in, &out); err != nil {
		return nil, err
	}
	s.session.SetAuth(out.AccessToken, out.User)
	return &out, nil
}

// Me devuelve el usuario autenticado según el backend.
func (s *AuthService) Me(ctx context.Context) (*dto.UserResponse, error) {
	var out dto.UserResponse
	if err := s.session.do(ctx, http.MethodGet, "/api/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout limpia la sesión local. No hay llamada al backend: el token
// simplemente deja de usarse.
func (s *AuthService) Logout() {
	s.session.Clear()
}
