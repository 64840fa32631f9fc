package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vinsa/company-registry/internal/domain"
	"github.com/vinsa/company-registry/internal/domain/entity"
	"github.com/vinsa/company-registry/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, clerk_id, email, full_name, mobile_no, gender, created_at, updated_at`

// UserRepo implements the UserRepository port over PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository builds the persistence adapter for users.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create inserts a user row. A clerk_id collision (concurrent sync paths)
// maps to domain.ErrUserExists.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, clerk_id, email, full_name, mobile_no, gender, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		user.ID, user.ClerkID, user.Email, user.FullName,
		user.MobileNo, user.Gender, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID fetches a user by internal id; (nil, nil) when absent.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByClerkID fetches a user by external identity id; (nil, nil) when absent.
func (r *UserRepo) GetByClerkID(ctx context.Context, clerkID string) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE clerk_id = $1`, clerkID)
}

// UpdateByClerkID applies a partial update and returns the updated row;
// (nil, nil) when no row matches. A non-nil empty MobileNo clears the column.
func (r *UserRepo) UpdateByClerkID(ctx context.Context, clerkID string, upd entity.UserUpdate) (*entity.User, error) {
	sets := make([]string, 0, 5)
	args := make([]interface{}, 0, 6)
	add := func(col string, val interface{}) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if upd.Email != nil {
		add("email", *upd.Email)
	}
	if upd.FullName != nil {
		add("full_name", *upd.FullName)
	}
	if upd.MobileNo != nil {
		add("mobile_no", nullIfEmpty(*upd.MobileNo))
	}
	if upd.Gender != nil {
		add("gender", *upd.Gender)
	}
	add("updated_at", time.Now().UTC())

	args = append(args, clerkID)
	query := fmt.Sprintf(
		`UPDATE users SET %s WHERE clerk_id = $%d RETURNING `+userColumns,
		strings.Join(sets, ", "), len(args),
	)

	user, err := scanUser(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// List returns users ordered by creation time descending.
func (r *UserRepo) List(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

func (r *UserRepo) getOne(ctx context.Context, query string, arg interface{}) (*entity.User, error) {
	user, err := scanUser(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.ClerkID, &u.Email, &u.FullName,
		&u.MobileNo, &u.Gender, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
