package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sidiqjon/debt-manager/internal/domain/port"
	pgdb "github.com/Sidiqjon/debt-manager/pkg/postgres"
)

// UnitOfWork implements port.UnitOfWork over a pgx pool. The repositories
// handed to the callback share one transaction; row locks taken through
// FindByIDForUpdate hold until commit or rollback.
type UnitOfWork struct {
	pool *pgxpool.Pool
}

// NewUnitOfWork creates a transaction coordinator.
func NewUnitOfWork(pool *pgxpool.Pool) *UnitOfWork {
	return &UnitOfWork{pool: pool}
}

// WithinTx runs fn inside a transaction, committing on nil and rolling back
// on error or panic.
func (u *UnitOfWork) WithinTx(ctx context.Context, fn func(tx port.TxRepositories) error) error {
	return pgdb.WithTransaction(ctx, u.pool, func(tx pgx.Tx) error {
		return fn(txRepositories{tx: tx})
	})
}

type txRepositories struct {
	tx pgx.Tx
}

func (t txRepositories) Debts() port.DebtRepository       { return NewDebtRepo(t.tx) }
func (t txRepositories) Payments() port.PaymentRepository { return NewPaymentRepo(t.tx) }
func (t txRepositories) Debtors() port.DebtorRepository   { return NewDebtorRepo(t.tx) }
func (t txRepositories) Sellers() port.SellerRepository   { return NewSellerRepo(t.tx) }
