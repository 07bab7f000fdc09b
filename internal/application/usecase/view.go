package usecase

import (
	"context"

	"github.com/jhoicas/printers-api/internal/application/dto"
	"github.com/jhoicas/printers-api/internal/domain/entity"
	"github.com/jhoicas/printers-api/internal/domain/repository"
)

// buildUserView construye la vista completa del usuario autenticado:
// sus trabajos, impresoras (con estado derivado) y grupos. Se lee dentro
// de la misma transacción que la mutación que la provocó.
func buildUserView(ctx context.Context, r *repository.Repos, u *entity.User, tokenKey string) (*dto.UserView, error) {
	jobs, err := r.Jobs.ListByOwner(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	jvs := make([]dto.JobView, 0, len(jobs))
	for _, j := range jobs {
		jvs = append(jvs, dto.JobView{
			ID:       j.ID,
			Printer:  j.PrinterID,
			Owner:    j.Owner,
			FileName: j.FileName,
		})
	}

	printers, err := r.Printers.ListByOwner(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	pvs := make([]dto.PrinterView, 0, len(printers))
	for _, p := range printers {
		groupIDs, err := r.Groups.GroupIDsOf(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		queueIDs, err := r.Jobs.QueueIDs(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		if groupIDs == nil {
			groupIDs = []int64{}
		}
		if queueIDs == nil {
			queueIDs = []int64{}
		}
		pvs = append(pvs, dto.PrinterView{
			ID:       p.ID,
			Alias:    p.Alias,
			Model:    p.Model,
			Location: p.Location,
			IP:       p.IP,
			Groups:   groupIDs,
			Queue:    queueIDs,
			Status:   p.CurrentStatus(len(queueIDs)),
		})
	}

	groups, err := r.Groups.ListByOwner(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	gvs := make([]dto.GroupView, 0, len(groups))
	for _, g := range groups {
		printerIDs, err := r.Groups.PrinterIDs(ctx, g.ID)
		if err != nil {
			return nil, err
		}
		if printerIDs == nil {
			printerIDs = []int64{}
		}
		gvs = append(gvs, dto.GroupView{ID: g.ID, Name: g.Name, Printers: printerIDs})
	}

	return &dto.UserView{
		ID:       u.ID,
		Username: u.Username,
		Roles:    u.Roles,
		Token:    tokenKey,
		Jobs:     jvs,
		Printers: pvs,
		Groups:   gvs,
	}, nil
}

// buildAdminUserList construye el listado de administración: cada usuario
// con sus contadores de tokens, trabajos, impresoras y grupos.
func buildAdminUserList(ctx context.Context, r *repository.Repos) ([]dto.AdminUserView, error) {
	users, err := r.Users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AdminUserView, 0, len(users))
	for _, u := range users {
		tokens, err := r.Tokens.CountByUser(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		jobs, err := r.Jobs.CountByOwner(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		printers, err := r.Printers.CountByOwner(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		groups, err := r.Groups.CountByOwner(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.AdminUserView{
			ID:           u.ID,
			Username:     u.Username,
			Enabled:      u.Enabled,
			TokenCount:   tokens,
			JobCount:     jobs,
			PrinterCount: printers,
			GroupCount:   groups,
		})
	}
	return out, nil
}
