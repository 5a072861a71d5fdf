package repository

import (
	"context"
	"fmt"

	"resume-api/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

type ContactRepo struct {
	pool *pgxpool.Pool
}

func NewContactRepo(pool *pgxpool.Pool) *ContactRepo {
	return &ContactRepo{pool: pool}
}

func (r *ContactRepo) Insert(ctx context.Context, m *domain.ContactMessage) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO contact_messages
		(id, name, email, subject, message, recipient_email, status, source_ip, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		m.ID, m.Name, m.Email, m.Subject, m.Message, m.RecipientEmail, m.Status, m.SourceIP, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}

// ListRecent returns up to limit messages, newest first.
func (r *ContactRepo) ListRecent(ctx context.Context, limit int) ([]domain.ContactMessage, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, email, subject, message, recipient_email, status, source_ip, created_at
		FROM contact_messages ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	var out []domain.ContactMessage
	for rows.Next() {
		var m domain.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message,
			&m.RecipientEmail, &m.Status, &m.SourceIP, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// MarkRead flips a new message to read. The only allowed transition is
// new -> read, so messages in any other status are left untouched. Returns
// domain.ErrNotFound for an unknown id.
func (r *ContactRepo) MarkRead(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `UPDATE contact_messages SET status = $1 WHERE id = $2 AND status = $3`,
		domain.ContactStatusRead, id, domain.ContactStatusNew)
	if err != nil {
		return fmt.Errorf("mark message read: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	err = r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM contact_messages WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("mark message read: %w", err)
	}
	if !exists {
		return fmt.Errorf("contact message %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
