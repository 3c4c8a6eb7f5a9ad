package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Sidiqjon/debt-manager/internal/domain/model"
	pgdb "github.com/Sidiqjon/debt-manager/pkg/postgres"
)

// PaymentRepo implements port.PaymentRepository. Payments are written
// through DebtRepo; this side only reads.
type PaymentRepo struct {
	db pgdb.Querier
}

// NewPaymentRepo creates a PostgreSQL-backed payment repository.
func NewPaymentRepo(db pgdb.Querier) *PaymentRepo {
	return &PaymentRepo{db: db}
}

const paymentColumns = `p.id, p.debt_id, p.debtor_id, p.amount, p.created_at`

// FindByID retrieves a payment with its allocations, scoped to the seller
// through the owning debt.
func (r *PaymentRepo) FindByID(ctx context.Context, sellerID, id string) (model.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments p
		JOIN debts d ON d.id = p.debt_id
		WHERE d.seller_id = $1 AND p.id = $2
	`
	var p model.Payment
	err := r.db.QueryRow(ctx, query, sellerID, id).Scan(
		&p.ID, &p.DebtID, &p.DebtorID, &p.Amount, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Payment{}, model.ErrPaymentNotFound
		}
		return model.Payment{}, fmt.Errorf("query payment: %w", err)
	}

	p.Allocations, err = loadAllocations(ctx, r.db, p.ID)
	if err != nil {
		return model.Payment{}, err
	}
	return p, nil
}

// ListByDebtID returns a debt's payments, newest first.
func (r *PaymentRepo) ListByDebtID(ctx context.Context, sellerID, debtID string) ([]model.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments p
		JOIN debts d ON d.id = p.debt_id
		WHERE d.seller_id = $1 AND p.debt_id = $2
		ORDER BY p.created_at DESC
	`
	return r.queryMany(ctx, query, sellerID, debtID)
}

// ListByDebtorID returns all payments a debtor made across their debts,
// newest first.
func (r *PaymentRepo) ListByDebtorID(ctx context.Context, sellerID, debtorID string) ([]model.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments p
		JOIN debts d ON d.id = p.debt_id
		WHERE d.seller_id = $1 AND p.debtor_id = $2
		ORDER BY p.created_at DESC
	`
	return r.queryMany(ctx, query, sellerID, debtorID)
}

// ListBySellerID pages through all payments recorded for a seller.
func (r *PaymentRepo) ListBySellerID(ctx context.Context, sellerID string, limit, offset int) ([]model.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments p
		JOIN debts d ON d.id = p.debt_id
		WHERE d.seller_id = $1
		ORDER BY p.created_at DESC
		LIMIT $2 OFFSET $3
	`
	return r.queryMany(ctx, query, sellerID, limit, offset)
}

// SumByDebtorID totals a debtor's payments across the seller's debts.
func (r *PaymentRepo) SumByDebtorID(ctx context.Context, sellerID, debtorID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(p.amount), 0)
		FROM payments p
		JOIN debts d ON d.id = p.debt_id
		WHERE d.seller_id = $1 AND p.debtor_id = $2
	`
	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query, sellerID, debtorID).Scan(&total); err != nil {
		return decimal.Decimal{}, fmt.Errorf("sum payments: %w", err)
	}
	return total, nil
}

func (r *PaymentRepo) queryMany(ctx context.Context, query string, args ...any) ([]model.Payment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query payments: %w", err)
	}
	defer rows.Close()

	var payments []model.Payment
	for rows.Next() {
		var p model.Payment
		if err := rows.Scan(&p.ID, &p.DebtID, &p.DebtorID, &p.Amount, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payments: %w", err)
	}

	for i := range payments {
		payments[i].Allocations, err = loadAllocations(ctx, r.db, payments[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return payments, nil
}
