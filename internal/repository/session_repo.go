package repository

import (
	"context"
	"errors"

	"compogen/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionRepository scopes every read to the owning user and to active
// records. A session that is foreign, inactive, or absent is
// indistinguishable from the caller's point of view: all three come back
// as nil.
type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]entity.Session, error)
	FindActive(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Session, error)
	Save(ctx context.Context, session *entity.Session) error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, s *entity.Session) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *sessionRepository) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]entity.Session, error) {
	var sessions []entity.Session
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = true", userID).
		Order("last_modified DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepository) FindActive(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Session, error) {
	var session entity.Session
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ? AND is_active = true", id, userID).
		First(&session).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) Save(ctx context.Context, s *entity.Session) error {
	return r.db.WithContext(ctx).Save(s).Error
}
