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

// AdminRepo implements port.AdminRepository.
type AdminRepo struct {
	db pgdb.Querier
}

// NewAdminRepo creates a PostgreSQL-backed admin repository.
func NewAdminRepo(db pgdb.Querier) *AdminRepo {
	return &AdminRepo{db: db}
}

const adminColumns = `id, username, password_hash, role, is_active, created_at, updated_at`

// Save inserts a new admin account.
func (r *AdminRepo) Save(ctx context.Context, admin model.Admin) error {
	query := `INSERT INTO admins (` + adminColumns + `) VALUES ($1,$2,$3,$4,$5,$6,$7)`
	_, err := r.db.Exec(ctx, query,
		admin.ID(), admin.Username(), admin.PasswordHash(), admin.Role(),
		admin.IsActive(), admin.CreatedAt(), admin.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

// Update rewrites the admin row.
func (r *AdminRepo) Update(ctx context.Context, admin model.Admin) error {
	query := `
		UPDATE admins SET
			password_hash = $2,
			role          = $3,
			is_active     = $4,
			updated_at    = $5
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		admin.ID(), admin.PasswordHash(), admin.Role(), admin.IsActive(), admin.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("update admin: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrAdminNotFound
	}
	return nil
}

// FindByID retrieves an admin by ID.
func (r *AdminRepo) FindByID(ctx context.Context, id string) (model.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE id = $1`
	return scanAdminRow(r.db.QueryRow(ctx, query, id))
}

// FindByUsername retrieves an admin by their login username.
func (r *AdminRepo) FindByUsername(ctx context.Context, username string) (model.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE username = $1`
	return scanAdminRow(r.db.QueryRow(ctx, query, username))
}

// List pages through admin accounts.
func (r *AdminRepo) List(ctx context.Context, limit, offset int) ([]model.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query admins: %w", err)
	}
	defer rows.Close()

	var admins []model.Admin
	for rows.Next() {
		admin, err := scanAdmin(rows)
		if err != nil {
			return nil, fmt.Errorf("scan admin: %w", err)
		}
		admins = append(admins, admin)
	}
	return admins, rows.Err()
}

// Delete removes an admin account.
func (r *AdminRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM admins WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete admin: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrAdminNotFound
	}
	return nil
}

func scanAdminRow(row pgx.Row) (model.Admin, error) {
	admin, err := scanAdmin(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Admin{}, model.ErrAdminNotFound
		}
		return model.Admin{}, fmt.Errorf("query admin: %w", err)
	}
	return admin, nil
}

func scanAdmin(row pgx.Row) (model.Admin, error) {
	var (
		id, username, passwordHash, role string
		isActive                         bool
		createdAt, updatedAt             time.Time
	)
	if err := row.Scan(&id, &username, &passwordHash, &role, &isActive, &createdAt, &updatedAt); err != nil {
		return model.Admin{}, err
	}
	return model.ReconstructAdmin(id, username, passwordHash, role, isActive, createdAt, updatedAt), nil
}
