package usecase

import (
	"context"

	"github.com/jhoicas/printers-api/internal/application/dto"
	"github.com/jhoicas/printers-api/internal/domain"
	"github.com/jhoicas/printers-api/internal/domain/check"
	"github.com/jhoicas/printers-api/internal/domain/entity"
	"github.com/jhoicas/printers-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase gestión de usuarios, solo para administradores. A diferencia
// del resto de agregados, aquí los usuarios se buscan por id sin alcance de
// propiedad: el admin gestiona todas las cuentas.
type UserUseCase struct {
	store Store
}

// NewUserUseCase construye el caso de uso de gestión de usuarios.
func NewUserUseCase(store Store) *UserUseCase {
	return &UserUseCase{store: store}
}

// Add crea un usuario habilitado con rol USER y devuelve el listado de
// administración.
func (uc *UserUseCase) Add(ctx context.Context, tokenKey string, in dto.AddUserRequest) ([]dto.AdminUserView, error) {
	var list []dto.AdminUserView
	err := uc.store.Run(ctx, func(r *repository.Repos) error {
		_, u, err := resolveToken(ctx, r, tokenKey)
		if err != nil {
			return err
		}
		if err := requireAdmin(u); err != nil {
			return err
		}

		o := &entity.User{Enabled: true, Roles: []entity.Role{entity.RoleUser}}
		if err := check.Mandatory("username", in.Username, check.NotEmpty, "cannot be empty",
			func(s string) { o.Username = s }); err != nil {
			return err
		}
		var hashErr error
		if err := check.Mandatory("password", in.Password, check.NotEmpty, "cannot be empty",
			func(s string) { hashErr = hashPassword(o, s) }); err != nil {
			return err
		}
		if hashErr != nil {
			return hashErr
		}
		if err := r.Users.Create(ctx, o); err != nil {
			return err
		}
		list, err = buildAdminUserList(ctx, r)
		return err
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Set actualiza parcialmente un usuario: solo los campos presentes en la
// petición. enabled viaja como texto "true"/"false".
func (uc *UserUseCase) Set(ctx context.Context, tokenKey string, in dto.SetUserRequest) ([]dto.AdminUserView, error) {
	var list []dto.AdminUserView
	err := uc.store.Run(ctx, func(r *repository.Repos) error {
		_, u, err := resolveToken(ctx, r, tokenKey)
		if err != nil {
			return err
		}
		if err := requireAdmin(u); err != nil {
			return err
		}
		if in.ID == nil {
			return domain.NewMissingField("id")
		}
		o, err := r.Users.FindByID(ctx, *in.ID)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.NewNotFound("user", *in.ID)
		}

		if err := check.Optional("enabled", in.Enabled, check.IsBool, "must be 'true' or 'false'",
			func(s string) { o.Enabled = s == "true" }); err != nil {
			return err
		}
		if err := check.Optional("username", in.Username, check.NotEmpty, "cannot be empty",
			func(s string) { o.Username = s }); err != nil {
			return err
		}
		var hashErr error
		if err := check.Optional("password", in.Password, check.NotEmpty, "cannot be empty",
			func(s string) { hashErr = hashPassword(o, s) }); err != nil {
			return err
		}
		if hashErr != nil {
			return hashErr
		}
		if err := r.Users.Update(ctx, o); err != nil {
			return err
		}
		list, err = buildAdminUserList(ctx, r)
		return err
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Remove elimina un usuario. El almacén cascada sus tokens, trabajos,
// impresoras (con sus filas de unión) y grupos.
func (uc *UserUseCase) Remove(ctx context.Context, tokenKey string, in dto.IDRequest) ([]dto.AdminUserView, error) {
	var list []dto.AdminUserView
	err := uc.store.Run(ctx, func(r *repository.Repos) error {
		_, u, err := resolveToken(ctx, r, tokenKey)
		if err != nil {
			return err
		}
		if err := requireAdmin(u); err != nil {
			return err
		}
		if in.ID == nil {
			return domain.NewMissingField("id")
		}
		o, err := r.Users.FindByID(ctx, *in.ID)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.NewNotFound("user", *in.ID)
		}
		if err := r.Users.Delete(ctx, o.ID); err != nil {
			return err
		}
		list, err = buildAdminUserList(ctx, r)
		return err
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// List devuelve el listado de administración (ulist).
func (uc *UserUseCase) List(ctx context.Context, tokenKey string) ([]dto.AdminUserView, error) {
	var list []dto.AdminUserView
	err := uc.store.Run(ctx, func(r *repository.Repos) error {
		_, u, err := resolveToken(ctx, r, tokenKey)
		if err != nil {
			return err
		}
		if err := requireAdmin(u); err != nil {
			return err
		}
		list, err = buildAdminUserList(ctx, r)
		return err
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

func hashPassword(o *entity.User, plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	o.PasswordHash = string(hash)
	return nil
}
