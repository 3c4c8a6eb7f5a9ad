package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Sidiqjon/debt-manager/internal/domain/model"
	"github.com/Sidiqjon/debt-manager/internal/domain/valueobject"
	pgdb "github.com/Sidiqjon/debt-manager/pkg/postgres"
)

// DebtRepo implements port.DebtRepository. It persists the aggregate as four
// tables: debts, payment_schedules, payments and payment_allocations.
type DebtRepo struct {
	db pgdb.Querier
}

// NewDebtRepo creates a PostgreSQL-backed debt repository. The Querier may
// be a pool or an open transaction.
func NewDebtRepo(db pgdb.Querier) *DebtRepo {
	return &DebtRepo{db: db}
}

const debtColumns = `
	id, debtor_id, seller_id, product_name, amount, debt_date,
	deadline, paid, comment, product_images, created_at, updated_at
`

// Save inserts a new debt with its full installment schedule.
func (r *DebtRepo) Save(ctx context.Context, debt model.Debt) error {
	query := `
		INSERT INTO debts (` + debtColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`
	_, err := r.db.Exec(ctx, query,
		debt.ID(), debt.DebtorID(), debt.SellerID(), debt.ProductName(),
		debt.Amount(), debt.Date(), debt.Deadline().String(), debt.Paid(),
		debt.Comment(), debt.ProductImages(), debt.CreatedAt(), debt.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("insert debt: %w", err)
	}

	if err := r.insertInstallments(ctx, debt.Schedule()); err != nil {
		return err
	}
	return nil
}

// Update rewrites the debt row and synchronizes the schedule, payments and
// allocations with the aggregate state. Installments and payments missing
// from the aggregate are removed, which covers both schedule regeneration
// and payment reversal.
func (r *DebtRepo) Update(ctx context.Context, debt model.Debt) error {
	query := `
		UPDATE debts SET
			product_name   = $2,
			amount         = $3,
			debt_date      = $4,
			deadline       = $5,
			paid           = $6,
			comment        = $7,
			product_images = $8,
			updated_at     = $9
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		debt.ID(), debt.ProductName(), debt.Amount(), debt.Date(),
		debt.Deadline().String(), debt.Paid(), debt.Comment(),
		debt.ProductImages(), debt.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("update debt: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrDebtNotFound
	}

	if err := r.syncSchedule(ctx, debt); err != nil {
		return err
	}
	if err := r.syncPayments(ctx, debt); err != nil {
		return err
	}
	return nil
}

// FindByID retrieves a debt with its schedule and payments, scoped to the
// owning seller.
func (r *DebtRepo) FindByID(ctx context.Context, sellerID, id string) (model.Debt, error) {
	return r.findOne(ctx, sellerID, id, false)
}

// FindByIDForUpdate is FindByID with the debt row locked. It must run
// inside a transaction; the lock serializes concurrent payments against the
// same debt.
func (r *DebtRepo) FindByIDForUpdate(ctx context.Context, sellerID, id string) (model.Debt, error) {
	return r.findOne(ctx, sellerID, id, true)
}

func (r *DebtRepo) findOne(ctx context.Context, sellerID, id string, forUpdate bool) (model.Debt, error) {
	query := `SELECT ` + debtColumns + ` FROM debts WHERE seller_id = $1 AND id = $2`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	row, err := scanDebtRow(r.db.QueryRow(ctx, query, sellerID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Debt{}, model.ErrDebtNotFound
		}
		return model.Debt{}, fmt.Errorf("query debt: %w", err)
	}
	return r.hydrate(ctx, row)
}

// FindByDebtorID retrieves all of one debtor's debts, newest first.
func (r *DebtRepo) FindByDebtorID(ctx context.Context, sellerID, debtorID string) ([]model.Debt, error) {
	query := `
		SELECT ` + debtColumns + `
		FROM debts
		WHERE seller_id = $1 AND debtor_id = $2
		ORDER BY created_at DESC
	`
	return r.queryMany(ctx, query, sellerID, debtorID)
}

// ListBySellerID pages through a seller's debts, newest first. A non-nil
// paid filters by settlement status.
func (r *DebtRepo) ListBySellerID(ctx context.Context, sellerID string, paid *bool, limit, offset int) ([]model.Debt, error) {
	query := `
		SELECT ` + debtColumns + `
		FROM debts
		WHERE seller_id = $1
		  AND ($2::boolean IS NULL OR paid = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`
	return r.queryMany(ctx, query, sellerID, paid, limit, offset)
}

// ListDueBetween returns open debts with an unpaid installment falling due
// in [from, to), across all sellers.
func (r *DebtRepo) ListDueBetween(ctx context.Context, from, to time.Time) ([]model.Debt, error) {
	query := `
		SELECT DISTINCT d.id, d.debtor_id, d.seller_id, d.product_name, d.amount,
		       d.debt_date, d.deadline, d.paid, d.comment, d.product_images,
		       d.created_at, d.updated_at
		FROM debts d
		JOIN payment_schedules ps ON ps.debt_id = d.id
		WHERE d.paid = FALSE
		  AND ps.is_paid = FALSE
		  AND ps.due_date >= $1 AND ps.due_date < $2
		ORDER BY d.created_at DESC
	`
	return r.queryMany(ctx, query, from, to)
}

// StatsBySellerID aggregates the seller's collection position in one round
// trip. The unpaid balance is summed over open installments so partially
// covered ones count only their remainder.
func (r *DebtRepo) StatsBySellerID(ctx context.Context, sellerID string, asOf time.Time) (model.SellerStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM debtors WHERE seller_id = $1),
			(SELECT COALESCE(SUM(ps.amount - ps.paid_amount), 0)
			 FROM payment_schedules ps
			 JOIN debts d ON d.id = ps.debt_id
			 WHERE d.seller_id = $1 AND ps.is_paid = FALSE),
			(SELECT COUNT(*)
			 FROM payment_schedules ps
			 JOIN debts d ON d.id = ps.debt_id
			 WHERE d.seller_id = $1 AND ps.is_paid = FALSE AND ps.due_date < $2)
	`
	var stats model.SellerStats
	err := r.db.QueryRow(ctx, query, sellerID, asOf).Scan(
		&stats.DebtorCount, &stats.TotalDebtBalance, &stats.DelayedInstallments,
	)
	if err != nil {
		return model.SellerStats{}, fmt.Errorf("query seller stats: %w", err)
	}
	return stats, nil
}

// Delete removes a debt; schedule, payments and allocations cascade.
func (r *DebtRepo) Delete(ctx context.Context, sellerID, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM debts WHERE seller_id = $1 AND id = $2`, sellerID, id)
	if err != nil {
		return fmt.Errorf("delete debt: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrDebtNotFound
	}
	return nil
}

// ---------------------------------------------------------------------------
// internals
// ---------------------------------------------------------------------------

type debtRow struct {
	id            string
	debtorID      string
	sellerID      string
	productName   string
	amount        decimal.Decimal
	date          time.Time
	deadline      string
	paid          bool
	comment       string
	productImages []string
	createdAt     time.Time
	updatedAt     time.Time
}

func scanDebtRow(row pgx.Row) (debtRow, error) {
	var d debtRow
	err := row.Scan(
		&d.id, &d.debtorID, &d.sellerID, &d.productName, &d.amount, &d.date,
		&d.deadline, &d.paid, &d.comment, &d.productImages, &d.createdAt, &d.updatedAt,
	)
	return d, err
}

func (r *DebtRepo) queryMany(ctx context.Context, query string, args ...any) ([]model.Debt, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query debts: %w", err)
	}
	defer rows.Close()

	var drs []debtRow
	for rows.Next() {
		d, err := scanDebtRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan debt: %w", err)
		}
		drs = append(drs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate debts: %w", err)
	}

	debts := make([]model.Debt, 0, len(drs))
	for _, d := range drs {
		debt, err := r.hydrate(ctx, d)
		if err != nil {
			return nil, err
		}
		debts = append(debts, debt)
	}
	return debts, nil
}

func (r *DebtRepo) hydrate(ctx context.Context, d debtRow) (model.Debt, error) {
	deadline, err := valueobject.NewDeadlinePeriod(d.deadline)
	if err != nil {
		return model.Debt{}, fmt.Errorf("debt %s: %w", d.id, err)
	}

	schedule, err := r.loadSchedule(ctx, d.id)
	if err != nil {
		return model.Debt{}, err
	}
	payments, err := r.loadPayments(ctx, d.id)
	if err != nil {
		return model.Debt{}, err
	}

	return model.ReconstructDebt(
		d.id, d.debtorID, d.sellerID, d.productName,
		d.amount, d.date, deadline, d.paid, d.comment, d.productImages,
		schedule, payments, d.createdAt, d.updatedAt,
	), nil
}

func (r *DebtRepo) loadSchedule(ctx context.Context, debtID string) ([]model.Installment, error) {
	query := `
		SELECT id, debt_id, number, amount, paid_amount, due_date, paid_date, is_paid
		FROM payment_schedules
		WHERE debt_id = $1
		ORDER BY number
	`
	rows, err := r.db.Query(ctx, query, debtID)
	if err != nil {
		return nil, fmt.Errorf("query schedule: %w", err)
	}
	defer rows.Close()

	var schedule []model.Installment
	for rows.Next() {
		var inst model.Installment
		if err := rows.Scan(
			&inst.ID, &inst.DebtID, &inst.Number, &inst.Amount,
			&inst.PaidAmount, &inst.DueDate, &inst.PaidDate, &inst.IsPaid,
		); err != nil {
			return nil, fmt.Errorf("scan installment: %w", err)
		}
		schedule = append(schedule, inst)
	}
	return schedule, rows.Err()
}

func (r *DebtRepo) loadPayments(ctx context.Context, debtID string) ([]model.Payment, error) {
	query := `
		SELECT id, debt_id, debtor_id, amount, created_at
		FROM payments
		WHERE debt_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.Query(ctx, query, debtID)
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
		allocations, err := loadAllocations(ctx, r.db, payments[i].ID)
		if err != nil {
			return nil, err
		}
		payments[i].Allocations = allocations
	}
	return payments, nil
}

func loadAllocations(ctx context.Context, db pgdb.Querier, paymentID string) ([]model.Allocation, error) {
	query := `
		SELECT installment_id, amount
		FROM payment_allocations
		WHERE payment_id = $1
		ORDER BY installment_id
	`
	rows, err := db.Query(ctx, query, paymentID)
	if err != nil {
		return nil, fmt.Errorf("query allocations: %w", err)
	}
	defer rows.Close()

	var allocations []model.Allocation
	for rows.Next() {
		var a model.Allocation
		if err := rows.Scan(&a.InstallmentID, &a.Amount); err != nil {
			return nil, fmt.Errorf("scan allocation: %w", err)
		}
		allocations = append(allocations, a)
	}
	return allocations, rows.Err()
}

func (r *DebtRepo) insertInstallments(ctx context.Context, schedule []model.Installment) error {
	query := `
		INSERT INTO payment_schedules (id, debt_id, number, amount, paid_amount, due_date, paid_date, is_paid)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`
	for _, inst := range schedule {
		_, err := r.db.Exec(ctx, query,
			inst.ID, inst.DebtID, inst.Number, inst.Amount,
			inst.PaidAmount, inst.DueDate, inst.PaidDate, inst.IsPaid,
		)
		if err != nil {
			return fmt.Errorf("insert installment %d: %w", inst.Number, err)
		}
	}
	return nil
}

// syncSchedule upserts every installment in the aggregate and removes rows
// the aggregate no longer has (regeneration replaces the whole set).
func (r *DebtRepo) syncSchedule(ctx context.Context, debt model.Debt) error {
	schedule := debt.Schedule()
	keep := make([]string, 0, len(schedule))

	upsert := `
		INSERT INTO payment_schedules (id, debt_id, number, amount, paid_amount, due_date, paid_date, is_paid)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id) DO UPDATE SET
			paid_amount = EXCLUDED.paid_amount,
			paid_date   = EXCLUDED.paid_date,
			is_paid     = EXCLUDED.is_paid
	`
	for _, inst := range schedule {
		keep = append(keep, inst.ID)
		_, err := r.db.Exec(ctx, upsert,
			inst.ID, inst.DebtID, inst.Number, inst.Amount,
			inst.PaidAmount, inst.DueDate, inst.PaidDate, inst.IsPaid,
		)
		if err != nil {
			return fmt.Errorf("upsert installment %d: %w", inst.Number, err)
		}
	}

	_, err := r.db.Exec(ctx,
		`DELETE FROM payment_schedules WHERE debt_id = $1 AND NOT (id = ANY($2))`,
		debt.ID(), keep,
	)
	if err != nil {
		return fmt.Errorf("prune installments: %w", err)
	}
	return nil
}

// syncPayments inserts payments new to the aggregate and deletes rows for
// payments the aggregate dropped (reversal). Allocations ride along.
func (r *DebtRepo) syncPayments(ctx context.Context, debt model.Debt) error {
	payments := debt.Payments()
	keep := make([]string, 0, len(payments))

	insert := `
		INSERT INTO payments (id, debt_id, debtor_id, amount, created_at)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (id) DO NOTHING
	`
	insertAlloc := `
		INSERT INTO payment_allocations (payment_id, installment_id, amount)
		VALUES ($1,$2,$3)
		ON CONFLICT (payment_id, installment_id) DO NOTHING
	`
	for _, p := range payments {
		keep = append(keep, p.ID)
		_, err := r.db.Exec(ctx, insert, p.ID, p.DebtID, p.DebtorID, p.Amount, p.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert payment: %w", err)
		}
		for _, a := range p.Allocations {
			if _, err := r.db.Exec(ctx, insertAlloc, p.ID, a.InstallmentID, a.Amount); err != nil {
				return fmt.Errorf("insert allocation: %w", err)
			}
		}
	}

	_, err := r.db.Exec(ctx,
		`DELETE FROM payments WHERE debt_id = $1 AND NOT (id = ANY($2))`,
		debt.ID(), keep,
	)
	if err != nil {
		return fmt.Errorf("prune payments: %w", err)
	}
	return nil
}
