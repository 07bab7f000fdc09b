package usecase

import (
	"context"

	"github.com/jhoicas/printers-api/internal/domain"
	"github.com/jhoicas/printers-api/internal/domain/repository"
)

// Mantenimiento de la relación muchos-a-muchos Printer↔PGroup. Todos los
// endpoints que tocan la relación (addprinter, setprinter, addgroup,
// setgroup) pasan por el mismo par de rutinas diff-and-apply: se calcula
// el conjunto destino, se compara con el actual y se dan de alta o de baja
// pares completos, nunca un solo lado.

// diffIDs devuelve los ids presentes en target y no en current (added) y
// los presentes en current y no en target (removed).
func diffIDs(current, target []int64) (added, removed []int64) {
	cur := make(map[int64]bool, len(current))
	for _, id := range current {
		cur[id] = true
	}
	tgt := make(map[int64]bool, len(target))
	for _, id := range target {
		if !tgt[id] {
			tgt[id] = true
			if !cur[id] {
				added = append(added, id)
			}
		}
	}
	for _, id := range current {
		if !tgt[id] {
			removed = append(removed, id)
		}
	}
	return added, removed
}

// resolveGroupIDs verifica que cada id de grupo exista y pertenezca al
// usuario, y devuelve el conjunto destino sin duplicados.
func resolveGroupIDs(ctx context.Context, r *repository.Repos, ownerID int64, ids []int64) ([]int64, error) {
	seen := make(map[int64]bool, len(ids))
	target := make([]int64, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		g, err := r.Groups.FindByIDAndOwner(ctx, id, ownerID)
		if err != nil {
			return nil, err
		}
		if g == nil {
			return nil, domain.NewNotFound("group", id)
		}
		target = append(target, id)
	}
	return target, nil
}

// resolvePrinterIDs igual que resolveGroupIDs, para ids de impresora.
func resolvePrinterIDs(ctx context.Context, r *repository.Repos, ownerID int64, ids []int64) ([]int64, error) {
	seen := make(map[int64]bool, len(ids))
	target := make([]int64, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		p, err := r.Printers.FindByIDAndOwner(ctx, id, ownerID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, domain.NewNotFound("printer", id)
		}
		target = append(target, id)
	}
	return target, nil
}

// syncPrinterGroups reconcilia los grupos de una impresora con el conjunto
// destino: baja los pares sobrantes y alta los que faltan.
func syncPrinterGroups(ctx context.Context, r *repository.Repos, printerID int64, target []int64) error {
	current, err := r.Groups.GroupIDsOf(ctx, printerID)
	if err != nil {
		return err
	}
	added, removed := diffIDs(current, target)
	for _, gid := range removed {
		if err := r.Groups.Unlink(ctx, printerID, gid); err != nil {
			return err
		}
	}
	for _, gid := range added {
		if err := r.Groups.Link(ctx, printerID, gid); err != nil {
			return err
		}
	}
	return nil
}

// syncGroupPrinters reconcilia las impresoras de un grupo con el conjunto
// destino, mismo diff sobre el otro eje de la relación.
func syncGroupPrinters(ctx context.Context, r *repository.Repos, groupID int64, target []int64) error {
	current, err := r.Groups.PrinterIDs(ctx, groupID)
	if err != nil {
		return err
	}
	added, removed := diffIDs(current, target)
	for _, pid := range removed {
		if err := r.Groups.Unlink(ctx, pid, groupID); err != nil {
			return err
		}
	}
	for _, pid := range added {
		if err := r.Groups.Link(ctx, pid, groupID); err != nil {
			return err
		}
	}
	return nil
}
