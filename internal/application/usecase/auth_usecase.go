package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/jhoicas/printers-api/internal/application/dto"
	"github.com/jhoicas/printers-api/internal/domain"
	"github.com/jhoicas/printers-api/internal/domain/check"
	"github.com/jhoicas/printers-api/internal/domain/entity"
	"github.com/jhoicas/printers-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// AuthUseCase casos de uso de sesión: login, logout y la vista de usuario.
type AuthUseCase struct {
	store Store
	// masterKey clave maestra del operador; vacía = desactivada.
	masterKey string
}

// NewAuthUseCase construye el caso de uso de autenticación.
func NewAuthUseCase(store Store, masterKey string) *AuthUseCase {
	return &AuthUseCase{store: store, masterKey: masterKey}
}

// Login verifica credenciales, crea un token de sesión y devuelve la vista
// completa del usuario. La clave maestra, si está configurada, autentica
// como cualquier usuario habilitado sin importar su password real.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.UserView, error) {
	var username, password string
	if err := check.Mandatory("username", in.Username, check.NotEmpty, "cannot be empty",
		func(s string) { username = s }); err != nil {
		return nil, err
	}
	if err := check.Mandatory("password", in.Password, check.NotEmpty, "cannot be empty",
		func(s string) { password = s }); err != nil {
		return nil, err
	}

	var view *dto.UserView
	err := uc.store.Run(ctx, func(r *repository.Repos) error {
		u, err := r.Users.FindByUsername(ctx, username)
		if err != nil {
			return err
		}
		if u == nil || !u.Enabled {
			return domain.ErrAuthFailed
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil &&
			!(uc.masterKey != "" && password == uc.masterKey) {
			return domain.ErrAuthFailed
		}

		t := &entity.Token{Key: uuid.NewString(), UserID: u.ID}
		if err := r.Tokens.Create(ctx, t); err != nil {
			return err
		}
		view, err = buildUserView(ctx, r, u, t.Key)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// Logout invalida el token de sesión. Falla con ErrInvalidToken si la
// clave no corresponde a ninguna sesión viva.
func (uc *AuthUseCase) Logout(ctx context.Context, tokenKey string) error {
	return uc.store.Run(ctx, func(r *repository.Repos) error {
		if _, _, err := resolveToken(ctx, r, tokenKey); err != nil {
			return err
		}
		return r.Tokens.DeleteByKey(ctx, tokenKey)
	})
}

// List devuelve la vista completa del usuario del token.
func (uc *AuthUseCase) List(ctx context.Context, tokenKey string) (*dto.UserView, error) {
	var view *dto.UserView
	err := uc.store.Run(ctx, func(r *repository.Repos) error {
		t, u, err := resolveToken(ctx, r, tokenKey)
		if err != nil {
			return err
		}
		view, err = buildUserView(ctx, r, u, t.Key)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// EnsureAdmin crea el administrador inicial si el almacén no tiene ningún
// usuario. Devuelve true si lo creó.
func (uc *AuthUseCase) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	created := false
	err := uc.store.Run(ctx, func(r *repository.Repos) error {
		n, err := r.Users.Count(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u := &entity.User{
			Username:     username,
			PasswordHash: string(hash),
			Enabled:      true,
			Roles:        []entity.Role{entity.RoleAdmin, entity.RoleUser},
		}
		if err := r.Users.Create(ctx, u); err != nil {
			return err
		}
		created = true
		return nil
	})
	return created, err
}
