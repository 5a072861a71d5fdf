package usecase

import (
	"context"
	"time"

	"resume-api/internal/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ContactStore persists contact-form submissions.
type ContactStore interface {
	Insert(ctx context.Context, m *domain.ContactMessage) error
	ListRecent(ctx context.Context, limit int) ([]domain.ContactMessage, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}

// ContactService handles public contact-form submissions and the admin-side
// inbox. No mail is sent; new submissions are only stored and logged.
type ContactService struct {
	store     ContactStore
	recipient string
	now       func() time.Time
}

func NewContactService(store ContactStore, recipient string) *ContactService {
	return &ContactService{store: store, recipient: recipient, now: time.Now}
}

// Submit stores a new message with status "new". The caller's IP is kept
// alongside the message for the admin inbox.
func (s *ContactService) Submit(ctx context.Context, in domain.ContactInput, sourceIP string) (*domain.ContactMessage, error) {
	recipient := in.RecipientEmail
	if recipient == "" {
		recipient = s.recipient
	}

	m := &domain.ContactMessage{
		ID:             uuid.New(),
		Name:           in.Name,
		Email:          in.Email,
		Subject:        in.Subject,
		Message:        in.Message,
		RecipientEmail: recipient,
		Status:         domain.ContactStatusNew,
		SourceIP:       sourceIP,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.store.Insert(ctx, m); err != nil {
		return nil, err
	}

	log.Info().
		Str("from", m.Email).
		Str("subject", m.Subject).
		Msg("new contact message received")

	return m, nil
}

// List returns the most recent messages, newest first.
func (s *ContactService) List(ctx context.Context, limit int) ([]domain.ContactMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.store.ListRecent(ctx, limit)
}

// MarkRead transitions a message from new to read. Returns
// domain.ErrNotFound for an unknown id.
func (s *ContactService) MarkRead(ctx context.Context, id uuid.UUID) error {
	return s.store.MarkRead(ctx, id)
}
