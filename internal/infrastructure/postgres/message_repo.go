package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Sidiqjon/debt-manager/internal/domain/model"
	pgdb "github.com/Sidiqjon/debt-manager/pkg/postgres"
)

// MessageRepo implements port.MessageRepository.
type MessageRepo struct {
	db pgdb.Querier
}

// NewMessageRepo creates a PostgreSQL-backed message repository.
func NewMessageRepo(db pgdb.Querier) *MessageRepo {
	return &MessageRepo{db: db}
}

const messageColumns = `id, seller_id, debtor_id, text, status, sent_at, created_at`

// Save inserts a message with its delivery outcome.
func (r *MessageRepo) Save(ctx context.Context, message model.Message) error {
	query := `INSERT INTO messages (` + messageColumns + `) VALUES ($1,$2,$3,$4,$5,$6,$7)`
	_, err := r.db.Exec(ctx, query,
		message.ID(), message.SellerID(), message.DebtorID(),
		message.Text(), message.Status(), message.SentAt(), message.CreatedAt(),
	)
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

// Update rewrites a message's delivery status.
func (r *MessageRepo) Update(ctx context.Context, message model.Message) error {
	query := `UPDATE messages SET status = $2, sent_at = $3 WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, message.ID(), message.Status(), message.SentAt())
	if err != nil {
		return fmt.Errorf("update message: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("message %s not found", message.ID())
	}
	return nil
}

// FindByID retrieves a message scoped to the sending seller.
func (r *MessageRepo) FindByID(ctx context.Context, sellerID, id string) (model.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages WHERE seller_id = $1 AND id = $2`
	message, err := scanMessage(r.db.QueryRow(ctx, query, sellerID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Message{}, fmt.Errorf("message %s not found", id)
		}
		return model.Message{}, fmt.Errorf("query message: %w", err)
	}
	return message, nil
}

// ListBySellerID pages through a seller's SMS history, newest first.
func (r *MessageRepo) ListBySellerID(ctx context.Context, sellerID string, limit, offset int) ([]model.Message, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM messages
		WHERE seller_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	return r.queryMany(ctx, query, sellerID, limit, offset)
}

// ListByDebtorID returns messages sent to one debtor, newest first.
func (r *MessageRepo) ListByDebtorID(ctx context.Context, sellerID, debtorID string) ([]model.Message, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM messages
		WHERE seller_id = $1 AND debtor_id = $2
		ORDER BY created_at DESC
	`
	return r.queryMany(ctx, query, sellerID, debtorID)
}

func (r *MessageRepo) queryMany(ctx context.Context, query string, args ...any) ([]model.Message, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	var messages []model.Message
	for rows.Next() {
		message, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		messages = append(messages, message)
	}
	return messages, rows.Err()
}

func scanMessage(row pgx.Row) (model.Message, error) {
	var (
		id, sellerID, debtorID, text, status string
		sentAt                               *time.Time
		createdAt                            time.Time
	)
	if err := row.Scan(&id, &sellerID, &debtorID, &text, &status, &sentAt, &createdAt); err != nil {
		return model.Message{}, err
	}
	return model.ReconstructMessage(id, sellerID, debtorID, text, status, sentAt, createdAt), nil
}

// TemplateRepo implements port.TemplateRepository.
type TemplateRepo struct {
	db pgdb.Querier
}

// NewTemplateRepo creates a PostgreSQL-backed template repository.
func NewTemplateRepo(db pgdb.Querier) *TemplateRepo {
	return &TemplateRepo{db: db}
}

const templateColumns = `id, seller_id, text, created_at, updated_at`

// Save inserts a new template. Global templates store NULL for seller_id.
func (r *TemplateRepo) Save(ctx context.Context, template model.MessageTemplate) error {
	query := `INSERT INTO message_templates (` + templateColumns + `) VALUES ($1,$2,$3,$4,$5)`
	_, err := r.db.Exec(ctx, query,
		template.ID(), nullableID(template.SellerID()), template.Text(),
		template.CreatedAt(), template.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("insert template: %w", err)
	}
	return nil
}

// Update rewrites the template text.
func (r *TemplateRepo) Update(ctx context.Context, template model.MessageTemplate) error {
	query := `UPDATE message_templates SET text = $2, updated_at = $3 WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, template.ID(), template.Text(), template.UpdatedAt())
	if err != nil {
		return fmt.Errorf("update template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrTemplateNotFound
	}
	return nil
}

// FindByID retrieves a template by ID.
func (r *TemplateRepo) FindByID(ctx context.Context, id string) (model.MessageTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM message_templates WHERE id = $1`
	template, err := scanTemplate(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.MessageTemplate{}, model.ErrTemplateNotFound
		}
		return model.MessageTemplate{}, fmt.Errorf("query template: %w", err)
	}
	return template, nil
}

// ListVisibleTo returns the seller's own templates plus the global ones.
func (r *TemplateRepo) ListVisibleTo(ctx context.Context, sellerID string) ([]model.MessageTemplate, error) {
	query := `
		SELECT ` + templateColumns + `
		FROM message_templates
		WHERE seller_id = $1 OR seller_id IS NULL
		ORDER BY seller_id NULLS LAST, created_at DESC
	`
	rows, err := r.db.Query(ctx, query, sellerID)
	if err != nil {
		return nil, fmt.Errorf("query templates: %w", err)
	}
	defer rows.Close()

	var templates []model.MessageTemplate
	for rows.Next() {
		template, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		templates = append(templates, template)
	}
	return templates, rows.Err()
}

// Delete removes a template.
func (r *TemplateRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM message_templates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrTemplateNotFound
	}
	return nil
}

func scanTemplate(row pgx.Row) (model.MessageTemplate, error) {
	var (
		id, text             string
		sellerID             *string
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &sellerID, &text, &createdAt, &updatedAt); err != nil {
		return model.MessageTemplate{}, err
	}
	owner := ""
	if sellerID != nil {
		owner = *sellerID
	}
	return model.ReconstructMessageTemplate(id, owner, text, createdAt, updatedAt), nil
}

func nullableID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
