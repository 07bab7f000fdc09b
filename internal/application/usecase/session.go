package usecase

import (
	"context"

	"github.com/jhoicas/printers-api/internal/domain"
	"github.com/jhoicas/printers-api/internal/domain/entity"
	"github.com/jhoicas/printers-api/internal/domain/repository"
)

// resolveToken resuelve la clave de sesión de la petición al token y su
// usuario. Toda operación salvo login empieza aquí, antes de cualquier
// mutación: una autorización fallida no deja estado parcial.
func resolveToken(ctx context.Context, r *repository.Repos, key string) (*entity.Token, *entity.User, error) {
	t, err := r.Tokens.FindByKey(ctx, key)
	if err != nil {
		return nil, nil, err
	}
	if t == nil {
		return nil, nil, domain.ErrInvalidToken
	}
	u, err := r.Users.FindByID(ctx, t.UserID)
	if err != nil {
		return nil, nil, err
	}
	if u == nil {
		// sesión huérfana: el usuario fue eliminado con el token vivo
		return nil, nil, domain.ErrInvalidToken
	}
	return t, u, nil
}

// requireAdmin es la puerta de rol para la gestión de usuarios. El rol de
// administrador NO exime del alcance de propiedad en impresoras, trabajos
// y grupos: solo habilita adduser/setuser/rmuser/ulist.
func requireAdmin(u *entity.User) error {
	if !u.HasRole(entity.RoleAdmin) {
		return domain.ErrForbidden
	}
	return nil
}
