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

// DebtorRepo implements port.DebtorRepository.
type DebtorRepo struct {
	db pgdb.Querier
}

// NewDebtorRepo creates a PostgreSQL-backed debtor repository.
func NewDebtorRepo(db pgdb.Querier) *DebtorRepo {
	return &DebtorRepo{db: db}
}

const debtorColumns = `
	id, seller_id, full_name, address, note, phone_numbers,
	images, is_favorite, created_at, updated_at
`

// Save inserts a new debtor.
func (r *DebtorRepo) Save(ctx context.Context, debtor model.Debtor) error {
	query := `
		INSERT INTO debtors (` + debtorColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`
	_, err := r.db.Exec(ctx, query,
		debtor.ID(), debtor.SellerID(), debtor.FullName(), debtor.Address(),
		debtor.Note(), debtor.PhoneNumbers(), debtor.Images(),
		debtor.IsFavorite(), debtor.CreatedAt(), debtor.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("insert debtor: %w", err)
	}
	return nil
}

// Update rewrites the debtor's profile fields.
func (r *DebtorRepo) Update(ctx context.Context, debtor model.Debtor) error {
	query := `
		UPDATE debtors SET
			full_name     = $2,
			address       = $3,
			note          = $4,
			phone_numbers = $5,
			images        = $6,
			is_favorite   = $7,
			updated_at    = $8
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		debtor.ID(), debtor.FullName(), debtor.Address(), debtor.Note(),
		debtor.PhoneNumbers(), debtor.Images(), debtor.IsFavorite(), debtor.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("update debtor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrDebtorNotFound
	}
	return nil
}

// FindByID retrieves a debtor scoped to the owning seller.
func (r *DebtorRepo) FindByID(ctx context.Context, sellerID, id string) (model.Debtor, error) {
	query := `SELECT ` + debtorColumns + ` FROM debtors WHERE seller_id = $1 AND id = $2`

	debtor, err := scanDebtor(r.db.QueryRow(ctx, query, sellerID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Debtor{}, model.ErrDebtorNotFound
		}
		return model.Debtor{}, fmt.Errorf("query debtor: %w", err)
	}
	return debtor, nil
}

// ListBySellerID pages through a seller's debtors, favorites first.
func (r *DebtorRepo) ListBySellerID(ctx context.Context, sellerID string, limit, offset int) ([]model.Debtor, error) {
	query := `
		SELECT ` + debtorColumns + `
		FROM debtors
		WHERE seller_id = $1
		ORDER BY is_favorite DESC, full_name
		LIMIT $2 OFFSET $3
	`
	return r.queryMany(ctx, query, sellerID, limit, offset)
}

// Search matches debtors by name or phone number, case-insensitively.
func (r *DebtorRepo) Search(ctx context.Context, sellerID, search string, limit, offset int) ([]model.Debtor, error) {
	query := `
		SELECT ` + debtorColumns + `
		FROM debtors
		WHERE seller_id = $1
		  AND (full_name ILIKE '%' || $2 || '%'
		       OR EXISTS (SELECT 1 FROM unnest(phone_numbers) pn WHERE pn LIKE '%' || $2 || '%'))
		ORDER BY full_name
		LIMIT $3 OFFSET $4
	`
	return r.queryMany(ctx, query, sellerID, search, limit, offset)
}

// Delete removes a debtor; their debts cascade.
func (r *DebtorRepo) Delete(ctx context.Context, sellerID, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM debtors WHERE seller_id = $1 AND id = $2`, sellerID, id)
	if err != nil {
		return fmt.Errorf("delete debtor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrDebtorNotFound
	}
	return nil
}

func scanDebtor(row pgx.Row) (model.Debtor, error) {
	var (
		id, sellerID, fullName, address, note string
		phoneNumbers, images                  []string
		isFavorite                            bool
		createdAt, updatedAt                  time.Time
	)
	err := row.Scan(
		&id, &sellerID, &fullName, &address, &note,
		&phoneNumbers, &images, &isFavorite, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.Debtor{}, err
	}
	return model.ReconstructDebtor(
		id, sellerID, fullName, address, note,
		phoneNumbers, images, isFavorite, createdAt, updatedAt,
	), nil
}

func (r *DebtorRepo) queryMany(ctx context.Context, query string, args ...any) ([]model.Debtor, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query debtors: %w", err)
	}
	defer rows.Close()

	var debtors []model.Debtor
	for rows.Next() {
		debtor, err := scanDebtor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan debtor: %w", err)
		}
		debtors = append(debtors, debtor)
	}
	return debtors, rows.Err()
}
