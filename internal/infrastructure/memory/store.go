// Package memory implementa los puertos de persistencia sobre mapas en
// memoria protegidos por mutex. Sirve como driver para desarrollo local
// sin base de datos (STORE_DRIVER=memory) y como almacén de los tests.
// Run toma una instantánea del estado antes del callback y la restaura si
// este falla, de modo que cada operación es atómica igual que con una
// transacción PostgreSQL.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/printers-api/internal/domain/entity"
	"github.com/jhoicas/printers-api/internal/domain/repository"
)

type link struct {
	printerID int64
	groupID   int64
}

type state struct {
	nextID   int64
	users    map[int64]entity.User
	tokens   map[int64]entity.Token
	printers map[int64]entity.Printer
	groups   map[int64]entity.PGroup
	jobs     map[int64]entity.Job
	links    map[link]bool
}

func newState() *state {
	return &state{
		users:    make(map[int64]entity.User),
		tokens:   make(map[int64]entity.Token),
		printers: make(map[int64]entity.Printer),
		groups:   make(map[int64]entity.PGroup),
		jobs:     make(map[int64]entity.Job),
		links:    make(map[link]bool),
	}
}

func (s *state) clone() *state {
	c := &state{
		nextID:   s.nextID,
		users:    make(map[int64]entity.User, len(s.users)),
		tokens:   make(map[int64]entity.Token, len(s.tokens)),
		printers: make(map[int64]entity.Printer, len(s.printers)),
		groups:   make(map[int64]entity.PGroup, len(s.groups)),
		jobs:     make(map[int64]entity.Job, len(s.jobs)),
		links:    make(map[link]bool, len(s.links)),
	}
	for k, v := range s.users {
		v.Roles = append([]entity.Role(nil), v.Roles...)
		c.users[k] = v
	}
	for k, v := range s.tokens {
		c.tokens[k] = v
	}
	for k, v := range s.printers {
		c.printers[k] = v
	}
	for k, v := range s.groups {
		c.groups[k] = v
	}
	for k, v := range s.jobs {
		c.jobs[k] = v
	}
	for k := range s.links {
		c.links[k] = true
	}
	return c
}

func (s *state) id() int64 {
	s.nextID++
	return s.nextID
}

// Store almacén en memoria. Satisface usecase.Store.
type Store struct {
	mu sync.Mutex
	st *state
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{st: newState()}
}

// Run ejecuta fn con repositorios atados al almacén, en exclusión mutua.
// Si fn devuelve error, el estado previo se restaura íntegro.
func (s *Store) Run(ctx context.Context, fn func(r *repository.Repos) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	repos := &repository.Repos{
		Users:    &userRepo{st: s.st},
		Tokens:   &tokenRepo{st: s.st},
		Printers: &printerRepo{st: s.st},
		Groups:   &groupRepo{st: s.st},
		Jobs:     &jobRepo{st: s.st},
	}
	if err := fn(repos); err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

func sortedIDs(ids []int64) []int64 {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
