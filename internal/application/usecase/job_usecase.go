package usecase

import (
	"context"

	"github.com/jhoicas/printers-api/internal/application/dto"
	"github.com/jhoicas/printers-api/internal/domain"
	"github.com/jhoicas/printers-api/internal/domain/check"
	"github.com/jhoicas/printers-api/internal/domain/entity"
	"github.com/jhoicas/printers-api/internal/domain/repository"
)

// JobUseCase operaciones sobre trabajos de impresión del usuario.
type JobUseCase struct {
	store Store
}

// NewJobUseCase construye el caso de uso de trabajos.
func NewJobUseCase(store Store) *JobUseCase {
	return &JobUseCase{store: store}
}

// Add crea un trabajo al final de la cola de la impresora indicada.
func (uc *JobUseCase) Add(ctx context.Context, tokenKey string, in dto.AddJobRequest) (*dto.UserView, error) {
	var view *dto.UserView
	err := uc.store.Run(ctx, func(r *repository.Repos) error {
		t, u, err := resolveToken(ctx, r, tokenKey)
		if err != nil {
			return err
		}

		j := &entity.Job{OwnerID: u.ID}
		if err := check.Mandatory("fileName", in.FileName, check.IsPDF, "cannot be empty or non-pdf",
			func(s string) { j.FileName = s }); err != nil {
			return err
		}
		if in.Printer == nil {
			return domain.NewMissingField("printer")
		}
		p, err := r.Printers.FindByIDAndOwner(ctx, *in.Printer, u.ID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.NewNotFound("printer", *in.Printer)
		}
		tail, err := r.Jobs.QueueTail(ctx, p.ID)
		if err != nil {
			return err
		}
		j.PrinterID = p.ID
		j.QueuePos = tail
		if err := check.Mandatory("owner", in.Owner, check.NotEmpty, "cannot be empty",
			func(s string) { j.Owner = s }); err != nil {
			return err
		}
		if err := r.Jobs.Create(ctx, j); err != nil {
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

// Set actualiza parcialmente un trabajo. printer lo mueve al final de la
// cola destino; si es la misma impresora conserva su posición.
func (uc *JobUseCase) Set(ctx context.Context, tokenKey string, in dto.SetJobRequest) (*dto.UserView, error) {
	var view *dto.UserView
	err := uc.store.Run(ctx, func(r *repository.Repos) error {
		t, u, err := resolveToken(ctx, r, tokenKey)
		if err != nil {
			return err
		}
		if in.ID == nil {
			return domain.NewMissingField("id")
		}
		j, err := r.Jobs.FindByIDAndOwner(ctx, *in.ID, u.ID)
		if err != nil {
			return err
		}
		if j == nil {
			return domain.NewNotFound("job", *in.ID)
		}

		if err := check.Optional("fileName", in.FileName, check.IsPDF, "cannot be empty or non-pdf",
			func(s string) { j.FileName = s }); err != nil {
			return err
		}
		if in.Printer != nil {
			p, err := r.Printers.FindByIDAndOwner(ctx, *in.Printer, u.ID)
			if err != nil {
				return err
			}
			if p == nil {
				return domain.NewNotFound("printer", *in.Printer)
			}
			if p.ID != j.PrinterID {
				// Las posiciones pueden tener huecos tras borrados; el
				// destino es la cola siguiente a la mayor ocupada, no la
				// longitud de la cola.
				tail, err := r.Jobs.QueueTail(ctx, p.ID)
				if err != nil {
					return err
				}
				j.PrinterID = p.ID
				j.QueuePos = tail
			}
		}
		if err := check.Optional("owner", in.Owner, check.NotEmpty, "cannot be empty",
			func(s string) { j.Owner = s }); err != nil {
			return err
		}
		if err := r.Jobs.Update(ctx, j); err != nil {
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

// Remove elimina un trabajo.
func (uc *JobUseCase) Remove(ctx context.Context, tokenKey string, in dto.IDRequest) (*dto.UserView, error) {
	var view *dto.UserView
	err := uc.store.Run(ctx, func(r *repository.Repos) error {
		t, u, err := resolveToken(ctx, r, tokenKey)
		if err != nil {
			return err
		}
		if in.ID == nil {
			return domain.NewMissingField("id")
		}
		j, err := r.Jobs.FindByIDAndOwner(ctx, *in.ID, u.ID)
		if err != nil {
			return err
		}
		if j == nil {
			return domain.NewNotFound("job", *in.ID)
		}
		if err := r.Jobs.Delete(ctx, j.ID); err != nil {
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
