package service

import (
	"context"
	"time"

	"compogen/internal/entity"

	"github.com/google/uuid"
)

// --- Mock repositories ---

type mockUserRepo struct {
	createFn      func(ctx context.Context, user *entity.User) error
	findByIDFn    func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	findByEmailFn func(ctx context.Context, email string) (*entity.User, error)
	updateFn      func(ctx context.Context, user *entity.User) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	user.ID = uuid.New()
	return nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) Update(ctx context.Context, user *entity.User) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, user)
	}
	return nil
}

type mockSessionRepo struct {
	createFn func(ctx context.Context, s *entity.Session) error
	listFn   func(ctx context.Context, userID uuid.UUID) ([]entity.Session, error)
	findFn   func(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Session, error)
	saveFn   func(ctx context.Context, s *entity.Session) error
}

func (m *mockSessionRepo) Create(ctx context.Context, s *entity.Session) error {
	if m.createFn != nil {
		return m.createFn(ctx, s)
	}
	s.ID = uuid.New()
	return nil
}

func (m *mockSessionRepo) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]entity.Session, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockSessionRepo) FindActive(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Session, error) {
	if m.findFn != nil {
		return m.findFn(ctx, id, userID)
	}
	return nil, nil
}

func (m *mockSessionRepo) Save(ctx context.Context, s *entity.Session) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, s)
	}
	return nil
}

// --- Fake clock ---

type fakeClock struct {
	now time.Time
}

func (c fakeClock) Now() time.Time {
	return c.now
}
