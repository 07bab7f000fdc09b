package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/printers-api/internal/application/dto"
	"github.com/jhoicas/printers-api/internal/domain"
	"github.com/jhoicas/printers-api/internal/domain/check"
	"github.com/jhoicas/printers-api/internal/domain/entity"
	"github.com/jhoicas/printers-api/internal/domain/repository"
)

// PrinterUseCase operaciones sobre impresoras del usuario autenticado.
type PrinterUseCase struct {
	store Store
}

// NewPrinterUseCase construye el caso de uso de impresoras.
func NewPrinterUseCase(store Store) *PrinterUseCase {
	return &PrinterUseCase{store: store}
}

// Add crea una impresora. Por defecto con tinta y papel (estado PAUSED);
// queue, status y groups son opcionales y se aplican en ese orden.
func (uc *PrinterUseCase) Add(ctx context.Context, tokenKey string, in dto.AddPrinterRequest) (*dto.UserView, error) {
	var view *dto.UserView
	err := uc.store.Run(ctx, func(r *repository.Repos) error {
		t, u, err := resolveToken(ctx, r, tokenKey)
		if err != nil {
			return err
		}

		p := &entity.Printer{OwnerID: u.ID, Ink: entity.DefaultInk, Paper: entity.DefaultPaper}
		if err := checkPrinterFields(p, true, in.Alias, in.Model, in.Location, in.IP); err != nil {
			return err
		}
		if in.Status != nil {
			if err := applyStatus(p, *in.Status); err != nil {
				return err
			}
		}
		if err := r.Printers.Create(ctx, p); err != nil {
			return err
		}
		if in.Queue != nil {
			if err := setQueue(ctx, r, u.ID, p.ID, *in.Queue); err != nil {
				return err
			}
		}
		if in.Groups != nil {
			target, err := resolveGroupIDs(ctx, r, u.ID, *in.Groups)
			if err != nil {
				return err
			}
			if err := syncPrinterGroups(ctx, r, p.ID, target); err != nil {
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

// Set actualiza parcialmente una impresora: solo los campos presentes.
// groups reconcilia la pertenencia con diff-and-apply; queue reordena la
// cola; status es el atajo de escritura que muta tinta/papel.
func (uc *PrinterUseCase) Set(ctx context.Context, tokenKey string, in dto.SetPrinterRequest) (*dto.UserView, error) {
	var view *dto.UserView
	err := uc.store.Run(ctx, func(r *repository.Repos) error {
		t, u, err := resolveToken(ctx, r, tokenKey)
		if err != nil {
			return err
		}
		if in.ID == nil {
			return domain.NewMissingField("id")
		}
		p, err := r.Printers.FindByIDAndOwner(ctx, *in.ID, u.ID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.NewNotFound("printer", *in.ID)
		}

		if err := checkPrinterFields(p, false, in.Alias, in.Model, in.Location, in.IP); err != nil {
			return err
		}
		if in.Queue != nil {
			if err := setQueue(ctx, r, u.ID, p.ID, *in.Queue); err != nil {
				return err
			}
		}
		if in.Groups != nil {
			target, err := resolveGroupIDs(ctx, r, u.ID, *in.Groups)
			if err != nil {
				return err
			}
			if err := syncPrinterGroups(ctx, r, p.ID, target); err != nil {
				return err
			}
		}
		if in.Status != nil {
			if err := applyStatus(p, *in.Status); err != nil {
				return err
			}
		}
		if err := r.Printers.Update(ctx, p); err != nil {
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

// Remove elimina una impresora: primero la saca de todos sus grupos, y la
// eliminación cascada sus trabajos encolados.
func (uc *PrinterUseCase) Remove(ctx context.Context, tokenKey string, in dto.IDRequest) (*dto.UserView, error) {
	var view *dto.UserView
	err := uc.store.Run(ctx, func(r *repository.Repos) error {
		t, u, err := resolveToken(ctx, r, tokenKey)
		if err != nil {
			return err
		}
		if in.ID == nil {
			return domain.NewMissingField("id")
		}
		p, err := r.Printers.FindByIDAndOwner(ctx, *in.ID, u.ID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.NewNotFound("printer", *in.ID)
		}
		if err := r.Groups.DetachPrinter(ctx, p.ID); err != nil {
			return err
		}
		if err := r.Printers.Delete(ctx, p.ID); err != nil {
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

// checkPrinterFields valida y aplica los campos escalares de la impresora.
// alias es obligatorio solo en alta.
func checkPrinterFields(p *entity.Printer, aliasMandatory bool, alias, model, location, ip *string) error {
	if err := check.Field("alias", aliasMandatory, alias, check.NotEmpty, "cannot be empty",
		func(s string) { p.Alias = s }); err != nil {
		return err
	}
	if err := check.Optional("model", model, check.NotEmpty, "cannot be empty",
		func(s string) { p.Model = s }); err != nil {
		return err
	}
	if err := check.Optional("location", location, check.NotEmpty, "cannot be empty",
		func(s string) { p.Location = s }); err != nil {
		return err
	}
	return check.Optional("ip", ip, check.IsValidIP, "is not a valid IP",
		func(s string) { p.IP = s })
}

// applyStatus es el shim de compatibilidad para escribir un estado: no hay
// campo de estado persistido, así que el estado pedido se traduce a
// centinelas de tinta/papel. Es una escritura con pérdida: pedir PAUSED
// con cola no vacía seguirá leyéndose como PRINTING.
func applyStatus(p *entity.Printer, raw string) error {
	switch entity.Status(strings.ToUpper(raw)) {
	case entity.StatusNoInk:
		p.Ink = 0
	case entity.StatusNoPaper:
		p.Paper = 0
	case entity.StatusPrinting, entity.StatusPaused:
		p.Ink = 1
		p.Paper = 1
	default:
		return domain.NewInvalidField("status", "not a valid status: "+raw)
	}
	return nil
}

// setQueue reordena la cola de una impresora: los trabajos listados (con
// alcance de propiedad) se mueven a esta impresora en el orden de la lista;
// los que ya estaban encolados aquí y no aparecen en la lista conservan la
// pertenencia detrás de los listados, en su orden relativo previo. Un
// trabajo pertenece siempre a exactamente una cola: mover es reasignar
// printer_id, nunca duplicar.
func setQueue(ctx context.Context, r *repository.Repos, ownerID, printerID int64, ids []int64) error {
	pos := 0
	listed := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if listed[id] {
			continue
		}
		j, err := r.Jobs.FindByIDAndOwner(ctx, id, ownerID)
		if err != nil {
			return err
		}
		if j == nil {
			return domain.NewNotFound("job", id)
		}
		j.PrinterID = printerID
		j.QueuePos = pos
		pos++
		listed[id] = true
		if err := r.Jobs.Update(ctx, j); err != nil {
			return err
		}
	}
	rest, err := r.Jobs.ListByPrinter(ctx, printerID)
	if err != nil {
		return err
	}
	for _, j := range rest {
		if listed[j.ID] {
			continue
		}
		j.QueuePos = pos
		pos++
		if err := r.Jobs.Update(ctx, j); err != nil {
			return err
		}
	}
	return nil
}
