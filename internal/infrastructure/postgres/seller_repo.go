package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Sidiqjon/debt-manager/internal/domain/model"
	pgdb "github.com/Sidiqjon/debt-manager/pkg/postgres"
)

// SellerRepo implements port.SellerRepository.
type SellerRepo struct {
	db pgdb.Querier
}

// NewSellerRepo creates a PostgreSQL-backed seller repository.
func NewSellerRepo(db pgdb.Querier) *SellerRepo {
	return &SellerRepo{db: db}
}

const sellerColumns = `
	id, full_name, phone_number, email, password_hash, image,
	wallet, is_active, created_at, updated_at
`

// Save inserts a new seller.
func (r *SellerRepo) Save(ctx context.Context, seller model.Seller) error {
	query := `
		INSERT INTO sellers (` + sellerColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`
	_, err := r.db.Exec(ctx, query,
		seller.ID(), seller.FullName(), seller.PhoneNumber(), seller.Email(),
		seller.PasswordHash(), seller.Image(), seller.Wallet(),
		seller.IsActive(), seller.CreatedAt(), seller.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("insert seller: %w", err)
	}
	return nil
}

// Update rewrites the seller row.
func (r *SellerRepo) Update(ctx context.Context, seller model.Seller) error {
	query := `
		UPDATE sellers SET
			full_name     = $2,
			phone_number  = $3,
			email         = $4,
			password_hash = $5,
			image         = $6,
			wallet        = $7,
			is_active     = $8,
			updated_at    = $9
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		seller.ID(), seller.FullName(), seller.PhoneNumber(), seller.Email(),
		seller.PasswordHash(), seller.Image(), seller.Wallet(),
		seller.IsActive(), seller.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("update seller: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrSellerNotFound
	}
	return nil
}

// FindByID retrieves a seller by ID.
func (r *SellerRepo) FindByID(ctx context.Context, id string) (model.Seller, error) {
	query := `SELECT ` + sellerColumns + ` FROM sellers WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// FindByPhoneNumber retrieves a seller by their login phone number.
func (r *SellerRepo) FindByPhoneNumber(ctx context.Context, phoneNumber string) (model.Seller, error) {
	query := `SELECT ` + sellerColumns + ` FROM sellers WHERE phone_number = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, phoneNumber))
}

// List pages through all sellers, newest first.
func (r *SellerRepo) List(ctx context.Context, limit, offset int) ([]model.Seller, error) {
	query := `
		SELECT ` + sellerColumns + `
		FROM sellers
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query sellers: %w", err)
	}
	defer rows.Close()

	var sellers []model.Seller
	for rows.Next() {
		seller, err := scanSeller(rows)
		if err != nil {
			return nil, fmt.Errorf("scan seller: %w", err)
		}
		sellers = append(sellers, seller)
	}
	return sellers, rows.Err()
}

// Delete removes a seller; debtors, debts and messages cascade.
func (r *SellerRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM sellers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete seller: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrSellerNotFound
	}
	return nil
}

func (r *SellerRepo) scanOne(row pgx.Row) (model.Seller, error) {
	seller, err := scanSeller(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Seller{}, model.ErrSellerNotFound
		}
		return model.Seller{}, fmt.Errorf("query seller: %w", err)
	}
	return seller, nil
}

func scanSeller(row pgx.Row) (model.Seller, error) {
	var (
		id, fullName, phoneNumber, email, passwordHash, image string
		wallet                                                decimal.Decimal
		isActive                                              bool
		createdAt, updatedAt                                  time.Time
	)
	err := row.Scan(
		&id, &fullName, &phoneNumber, &email, &passwordHash, &image,
		&wallet, &isActive, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.Seller{}, err
	}
	return model.ReconstructSeller(
		id, fullName, phoneNumber, email, passwordHash, image,
		wallet, isActive, createdAt, updatedAt,
	), nil
}
