package service

import (
	"context"
	"strings"
	"time"

	"compogen/internal/entity"
	"compogen/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const defaultSessionTitle = "New Session"

type CreateSessionInput struct {
	Title       string
	Description string
}

// SessionUpdateInput distinguishes absent fields from fields explicitly set
// to an empty value: nil means untouched, a non-nil pointer is always
// applied.
type SessionUpdateInput struct {
	Title         *string
	Description   *string
	ChatHistory   *[]entity.ChatMessage
	GeneratedCode *entity.GeneratedCode
}

type SessionService struct {
	sessions repository.SessionRepository
	clock    Clock
}

func NewSessionService(sessions repository.SessionRepository, clock Clock) *SessionService {
	return &SessionService{sessions: sessions, clock: clock}
}

func (s *SessionService) List(ctx context.Context, userID uuid.UUID) ([]entity.Session, error) {
	return s.sessions.ListActiveByUser(ctx, userID)
}

func (s *SessionService) Get(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*entity.Session, error) {
	return s.findOwned(ctx, userID, id)
}

func (s *SessionService) Create(ctx context.Context, userID uuid.UUID, input CreateSessionInput) (*entity.Session, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = defaultSessionTitle
	}

	session := &entity.Session{
		UserID:       userID,
		Title:        title,
		Description:  input.Description,
		ChatHistory:  datatypes.JSONSlice[entity.ChatMessage]{},
		IsActive:     true,
		LastModified: s.now(),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionService) Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, input SessionUpdateInput) (*entity.Session, error) {
	session, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		session.Title = *input.Title
	}
	if input.Description != nil {
		session.Description = *input.Description
	}
	if input.ChatHistory != nil {
		session.ChatHistory = datatypes.JSONSlice[entity.ChatMessage](*input.ChatHistory)
	}
	if input.GeneratedCode != nil {
		session.GeneratedCode = datatypes.NewJSONType(*input.GeneratedCode)
	}

	session.LastModified = s.now()
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Delete soft-deletes: the record stays in storage but disappears from
// every scoped query. Deleting an already-deleted session is a not-found.
func (s *SessionService) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	session, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return err
	}

	session.IsActive = false
	session.LastModified = s.now()
	return s.sessions.Save(ctx, session)
}

func (s *SessionService) AppendChat(ctx context.Context, userID uuid.UUID, id uuid.UUID, role entity.ChatRole, content string) (*entity.Session, error) {
	if !entity.ValidChatRole(role) || strings.TrimSpace(content) == "" {
		return nil, ErrInvalidInput
	}

	session, err := s.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	session.ChatHistory = append(session.ChatHistory, entity.ChatMessage{
		Role:      role,
		Content:   content,
		Timestamp: now,
	})
	session.LastModified = now
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// findOwned hides foreign and inactive sessions behind the same not-found
// error as truly absent ones, so responses leak no existence signal.
func (s *SessionService) findOwned(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*entity.Session, error) {
	session, err := s.sessions.FindActive(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *SessionService) now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock.Now()
}
