package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/printers-api/internal/domain"
	"github.com/jhoicas/printers-api/internal/domain/entity"
	"github.com/jhoicas/printers-api/internal/domain/repository"
)

// Implementaciones en memoria de los puertos. Los Find* devuelven copias
// para que el llamante pueda mutar la entidad y confirmar con Update.

var (
	_ repository.UserRepository    = (*userRepo)(nil)
	_ repository.TokenRepository   = (*tokenRepo)(nil)
	_ repository.PrinterRepository = (*printerRepo)(nil)
	_ repository.GroupRepository   = (*groupRepo)(nil)
	_ repository.JobRepository     = (*jobRepo)(nil)
)

// ── Users ─────────────────────────────────────────────────────────────────

type userRepo struct{ st *state }

func (r *userRepo) Create(_ context.Context, u *entity.User) error {
	for _, o := range r.st.users {
		if o.Username == u.Username {
			return domain.ErrUsernameTaken
		}
	}
	u.ID = r.st.id()
	r.st.users[u.ID] = *u
	return nil
}

func (r *userRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	if u, ok := r.st.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r *userRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.st.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *userRepo) Update(_ context.Context, u *entity.User) error {
	for id, o := range r.st.users {
		if o.Username == u.Username && id != u.ID {
			return domain.ErrUsernameTaken
		}
	}
	r.st.users[u.ID] = *u
	return nil
}

func (r *userRepo) Delete(_ context.Context, id int64) error {
	// cascada: tokens, trabajos, impresoras (con sus filas de unión) y grupos
	for tid, t := range r.st.tokens {
		if t.UserID == id {
			delete(r.st.tokens, tid)
		}
	}
	for jid, j := range r.st.jobs {
		if j.OwnerID == id {
			delete(r.st.jobs, jid)
		}
	}
	for pid, p := range r.st.printers {
		if p.OwnerID == id {
			for l := range r.st.links {
				if l.printerID == pid {
					delete(r.st.links, l)
				}
			}
			delete(r.st.printers, pid)
		}
	}
	for gid, g := range r.st.groups {
		if g.OwnerID == id {
			for l := range r.st.links {
				if l.groupID == gid {
					delete(r.st.links, l)
				}
			}
			delete(r.st.groups, gid)
		}
	}
	delete(r.st.users, id)
	return nil
}

func (r *userRepo) List(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.st.users))
	for _, u := range r.st.users {
		u := u
		out = append(out, &u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *userRepo) Count(_ context.Context) (int, error) {
	return len(r.st.users), nil
}

// ── Tokens ────────────────────────────────────────────────────────────────

type tokenRepo struct{ st *state }

func (r *tokenRepo) Create(_ context.Context, t *entity.Token) error {
	t.ID = r.st.id()
	r.st.tokens[t.ID] = *t
	return nil
}

func (r *tokenRepo) FindByKey(_ context.Context, key string) (*entity.Token, error) {
	for _, t := range r.st.tokens {
		if t.Key == key {
			t := t
			return &t, nil
		}
	}
	return nil, nil
}

func (r *tokenRepo) DeleteByKey(_ context.Context, key string) error {
	for id, t := range r.st.tokens {
		if t.Key == key {
			delete(r.st.tokens, id)
		}
	}
	return nil
}

func (r *tokenRepo) CountByUser(_ context.Context, userID int64) (int, error) {
	n := 0
	for _, t := range r.st.tokens {
		if t.UserID == userID {
			n++
		}
	}
	return n, nil
}

// ── Printers ──────────────────────────────────────────────────────────────

type printerRepo struct{ st *state }

func (r *printerRepo) Create(_ context.Context, p *entity.Printer) error {
	p.ID = r.st.id()
	r.st.printers[p.ID] = *p
	return nil
}

func (r *printerRepo) FindByIDAndOwner(_ context.Context, id, ownerID int64) (*entity.Printer, error) {
	if p, ok := r.st.printers[id]; ok && p.OwnerID == ownerID {
		return &p, nil
	}
	return nil, nil
}

func (r *printerRepo) Update(_ context.Context, p *entity.Printer) error {
	r.st.printers[p.ID] = *p
	return nil
}

func (r *printerRepo) Delete(_ context.Context, id int64) error {
	for jid, j := range r.st.jobs {
		if j.PrinterID == id {
			delete(r.st.jobs, jid)
		}
	}
	for l := range r.st.links {
		if l.printerID == id {
			delete(r.st.links, l)
		}
	}
	delete(r.st.printers, id)
	return nil
}

func (r *printerRepo) ListByOwner(_ context.Context, ownerID int64) ([]*entity.Printer, error) {
	out := make([]*entity.Printer, 0)
	for _, p := range r.st.printers {
		if p.OwnerID == ownerID {
			p := p
			out = append(out, &p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *printerRepo) CountByOwner(_ context.Context, ownerID int64) (int, error) {
	n := 0
	for _, p := range r.st.printers {
		if p.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

// ── Groups ────────────────────────────────────────────────────────────────

type groupRepo struct{ st *state }

func (r *groupRepo) Create(_ context.Context, g *entity.PGroup) error {
	g.ID = r.st.id()
	r.st.groups[g.ID] = *g
	return nil
}

func (r *groupRepo) FindByIDAndOwner(_ context.Context, id, ownerID int64) (*entity.PGroup, error) {
	if g, ok := r.st.groups[id]; ok && g.OwnerID == ownerID {
		return &g, nil
	}
	return nil, nil
}

func (r *groupRepo) Update(_ context.Context, g *entity.PGroup) error {
	r.st.groups[g.ID] = *g
	return nil
}

func (r *groupRepo) Delete(_ context.Context, id int64) error {
	for l := range r.st.links {
		if l.groupID == id {
			delete(r.st.links, l)
		}
	}
	delete(r.st.groups, id)
	return nil
}

func (r *groupRepo) ListByOwner(_ context.Context, ownerID int64) ([]*entity.PGroup, error) {
	out := make([]*entity.PGroup, 0)
	for _, g := range r.st.groups {
		if g.OwnerID == ownerID {
			g := g
			out = append(out, &g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *groupRepo) CountByOwner(_ context.Context, ownerID int64) (int, error) {
	n := 0
	for _, g := range r.st.groups {
		if g.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

func (r *groupRepo) PrinterIDs(_ context.Context, groupID int64) ([]int64, error) {
	ids := make([]int64, 0)
	for l := range r.st.links {
		if l.groupID == groupID {
			ids = append(ids, l.printerID)
		}
	}
	return sortedIDs(ids), nil
}

func (r *groupRepo) GroupIDsOf(_ context.Context, printerID int64) ([]int64, error) {
	ids := make([]int64, 0)
	for l := range r.st.links {
		if l.printerID == printerID {
			ids = append(ids, l.groupID)
		}
	}
	return sortedIDs(ids), nil
}

func (r *groupRepo) Link(_ context.Context, printerID, groupID int64) error {
	r.st.links[link{printerID, groupID}] = true
	return nil
}

func (r *groupRepo) Unlink(_ context.Context, printerID, groupID int64) error {
	delete(r.st.links, link{printerID, groupID})
	return nil
}

func (r *groupRepo) DetachPrinter(_ context.Context, printerID int64) error {
	for l := range r.st.links {
		if l.printerID == printerID {
			delete(r.st.links, l)
		}
	}
	return nil
}

func (r *groupRepo) DetachGroup(_ context.Context, groupID int64) error {
	for l := range r.st.links {
		if l.groupID == groupID {
			delete(r.st.links, l)
		}
	}
	return nil
}

// ── Jobs ──────────────────────────────────────────────────────────────────

type jobRepo struct{ st *state }

func (r *jobRepo) Create(_ context.Context, j *entity.Job) error {
	j.ID = r.st.id()
	r.st.jobs[j.ID] = *j
	return nil
}

func (r *jobRepo) FindByIDAndOwner(_ context.Context, id, ownerID int64) (*entity.Job, error) {
	if j, ok := r.st.jobs[id]; ok && j.OwnerID == ownerID {
		return &j, nil
	}
	return nil, nil
}

func (r *jobRepo) Update(_ context.Context, j *entity.Job) error {
	r.st.jobs[j.ID] = *j
	return nil
}

func (r *jobRepo) Delete(_ context.Context, id int64) error {
	delete(r.st.jobs, id)
	return nil
}

func (r *jobRepo) ListByOwner(_ context.Context, ownerID int64) ([]*entity.Job, error) {
	out := make([]*entity.Job, 0)
	for _, j := range r.st.jobs {
		if j.OwnerID == ownerID {
			j := j
			out = append(out, &j)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *jobRepo) CountByOwner(_ context.Context, ownerID int64) (int, error) {
	n := 0
	for _, j := range r.st.jobs {
		if j.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

func (r *jobRepo) ListByPrinter(_ context.Context, printerID int64) ([]*entity.Job, error) {
	out := make([]*entity.Job, 0)
	for _, j := range r.st.jobs {
		if j.PrinterID == printerID {
			j := j
			out = append(out, &j)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].QueuePos != out[j].QueuePos {
			return out[i].QueuePos < out[j].QueuePos
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *jobRepo) QueueIDs(ctx context.Context, printerID int64) ([]int64, error) {
	jobs, err := r.ListByPrinter(ctx, printerID)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.ID)
	}
	return ids, nil
}

func (r *jobRepo) QueueLen(_ context.Context, printerID int64) (int, error) {
	n := 0
	for _, j := range r.st.jobs {
		if j.PrinterID == printerID {
			n++
		}
	}
	return n, nil
}

func (r *jobRepo) QueueTail(_ context.Context, printerID int64) (int, error) {
	tail := 0
	for _, j := range r.st.jobs {
		if j.PrinterID == printerID && j.QueuePos+1 > tail {
			tail = j.QueuePos + 1
		}
	}
	return tail, nil
}
