package service

import (
	"context"
	"sort"
	"sync"

	"github.com/sirene/bombeiros-api/internal/core/domain"
)

type stubMilitarRepo struct {
	mu    sync.Mutex
	byID  map[string]*domain.Militar
	err   error // if set, every call returns it
	calls int
}

func newStubMilitarRepo() *stubMilitarRepo {
	return &stubMilitarRepo{byID: make(map[string]*domain.Militar)}
}

func cloneMilitar(m *domain.Militar) *domain.Militar {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}

// conflicts mirrors the unique indexes on matricula, email and cpf.
func (r *stubMilitarRepo) conflicts(m *domain.Militar) bool {
	for id, other := range r.byID {
		if id == m.ID {
			continue
		}
		if other.Matricula == m.Matricula || other.Email == m.Email || other.CPF == m.CPF {
			return true
		}
	}
	return false
}

func (r *stubMilitarRepo) Create(_ context.Context, m *domain.Militar) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return r.err
	}
	if r.conflicts(m) {
		return domain.ErrDuplicateKey
	}
	r.byID[m.ID] = cloneMilitar(m)
	return nil
}

func (r *stubMilitarRepo) FindByID(_ context.Context, id string) (*domain.Militar, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	m, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneMilitar(m), nil
}

func (r *stubMilitarRepo) FindByMatricula(_ context.Context, matricula string) (*domain.Militar, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	for _, m := range r.byID {
		if m.Matricula == matricula {
			return cloneMilitar(m), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubMilitarRepo) FindByMatriculaAndCPF(_ context.Context, matricula, cpf string) (*domain.Militar, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	for _, m := range r.byID {
		if m.Matricula == matricula && m.CPF == cpf {
			return cloneMilitar(m), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubMilitarRepo) List(_ context.Context, offset, limit int) ([]*domain.Militar, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return nil, 0, r.err
	}
	all := make([]*domain.Militar, 0, len(r.byID))
	for _, m := range r.byID {
		all = append(all, cloneMilitar(m))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Nome < all[j].Nome })

	total := int64(len(all))
	if offset > len(all) {
		return []*domain.Militar{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *stubMilitarRepo) Update(_ context.Context, m *domain.Militar) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if _, ok := r.byID[m.ID]; !ok {
		return domain.ErrNotFound
	}
	if r.conflicts(m) {
		return domain.ErrDuplicateKey
	}
	r.byID[m.ID] = cloneMilitar(m)
	return nil
}

func (r *stubMilitarRepo) UpdatePassword(_ context.Context, id, senhaHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return r.err
	}
	m, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	m.SenhaHash = senhaHash
	return nil
}

func (r *stubMilitarRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubResetTickets struct {
	open map[string]bool
}

func (t *stubResetTickets) Open(_ context.Context, id string) error {
	if t.open == nil {
		t.open = make(map[string]bool)
	}
	t.open[id] = true
	return nil
}

func (t *stubResetTickets) Consume(_ context.Context, id string) (bool, error) {
	ok := t.open[id]
	delete(t.open, id)
	return ok, nil
}
