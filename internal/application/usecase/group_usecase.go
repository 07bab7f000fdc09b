package usecase

import (
	"context"

	"github.com/jhoicas/printers-api/internal/application/dto"
	"github.com/jhoicas/printers-api/internal/domain"
	"github.com/jhoicas/printers-api/internal/domain/check"
	"github.com/jhoicas/printers-api/internal/domain/entity"
	"github.com/jhoicas/printers-api/internal/domain/repository"
)

// GroupUseCase operaciones sobre grupos de impresoras del usuario.
type GroupUseCase struct {
	store Store
}

// NewGroupUseCase construye el caso de uso de grupos.
func NewGroupUseCase(store Store) *GroupUseCase {
	return &GroupUseCase{store: store}
}

// Add crea un grupo y, si viene printers, enlaza esas impresoras (ambos
// lados de la relación a la vez).
func (uc *GroupUseCase) Add(ctx context.Context, tokenKey string, in dto.AddGroupRequest) (*dto.UserView, error) {
	var view *dto.UserView
	err := uc.store.Run(ctx, func(r *repository.Repos) error {
		t, u, err := resolveToken(ctx, r, tokenKey)
		if err != nil {
			return err
		}

		g := &entity.PGroup{OwnerID: u.ID}
		if err := check.Mandatory("name", in.Name, check.NotEmpty, "cannot be empty",
			func(s string) { g.Name = s }); err != nil {
			return err
		}
		if err := r.Groups.Create(ctx, g); err != nil {
			return err
		}
		if in.Printers != nil {
			target, err := resolvePrinterIDs(ctx, r, u.ID, *in.Printers)
			if err != nil {
				return err
			}
			if err := syncGroupPrinters(ctx, r, g.ID, target); err != nil {
				return err
			}
		}
		view, err = buildUserView(ctx, r, u, t.Key)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// Set actualiza un grupo. name es obligatorio también en la actualización;
// printers, si viene, reconcilia la pertenencia.
func (uc *GroupUseCase) Set(ctx context.Context, tokenKey string, in dto.SetGroupRequest) (*dto.UserView, error) {
	var view *dto.UserView
	err := uc.store.Run(ctx, func(r *repository.Repos) error {
		t, u, err := resolveToken(ctx, r, tokenKey)
		if err != nil {
			return err
		}
		if in.ID == nil {
			return domain.NewMissingField("id")
		}
		g, err := r.Groups.FindByIDAndOwner(ctx, *in.ID, u.ID)
		if err != nil {
			return err
		}
		if g == nil {
			return domain.NewNotFound("group", *in.ID)
		}

		if err := check.Mandatory("name", in.Name, check.NotEmpty, "cannot be empty",
			func(s string) { g.Name = s }); err != nil {
			return err
		}
		if in.Printers != nil {
			target, err := resolvePrinterIDs(ctx, r, u.ID, *in.Printers)
			if err != nil {
				return err
			}
			if err := syncGroupPrinters(ctx, r, g.ID, target); err != nil {
				return err
			}
		}
		if err := r.Groups.Update(ctx, g); err != nil {
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

// Remove elimina un grupo, desenganchándolo antes de todas las impresoras
// que lo referenciaban.
func (uc *GroupUseCase) Remove(ctx context.Context, tokenKey string, in dto.IDRequest) (*dto.UserView, error) {
	var view *dto.UserView
	err := uc.store.Run(ctx, func(r *repository.Repos) error {
		t, u, err := resolveToken(ctx, r, tokenKey)
		if err != nil {
			return err
		}
		if in.ID == nil {
			return domain.NewMissingField("id")
		}
		g, err := r.Groups.FindByIDAndOwner(ctx, *in.ID, u.ID)
		if err != nil {
			return err
		}
		if g == nil {
			return domain.NewNotFound("group", *in.ID)
		}
		if err := r.Groups.DetachGroup(ctx, g.ID); err != nil {
			return err
		}
		if err := r.Groups.Delete(ctx, g.ID); err != nil {
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
