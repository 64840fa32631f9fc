package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vinsa/company-registry/internal/domain"
	"github.com/vinsa/company-registry/internal/domain/entity"
	"github.com/vinsa/company-registry/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// Reads join the owning user so responses can embed the owner summary,
// mirroring the foreign-key expansion the frontend expects.
const companySelect = `
	SELECT c.id, c.owner_id, c.company_name, c.company_type, c.industry,
	       c.employee_count, c.address, c.city, c.state, c.pincode,
	       c.company_description, c.website, c.verification_status,
	       c.verification_notes, c.created_at, c.updated_at,
	       u.id, u.clerk_id, u.email, u.full_name, u.mobile_no
	FROM companies c
	JOIN users u ON u.id = c.owner_id`

// CompanyRepo implements the CompanyRepository port over PostgreSQL.
type CompanyRepo struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository builds the persistence adapter for companies.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{pool: pool}
}

// Create inserts a company row. The owner_id unique index is the hard
// guarantee behind one-company-per-owner; a violation maps to
// domain.ErrCompanyExists.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (id, owner_id, company_name, company_type, industry,
		                       employee_count, address, city, state, pincode,
		                       company_description, website, verification_status,
		                       created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.pool.Exec(ctx, query,
		company.ID, company.OwnerID, company.CompanyName, company.CompanyType,
		company.Industry, company.EmployeeCount, company.Address, company.City,
		company.State, company.Pincode, company.CompanyDescription,
		company.Website, company.VerificationStatus,
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCompanyExists
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID fetches a company (with owner) by id; (nil, nil) when absent.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	return r.getOne(ctx, companySelect+` WHERE c.id = $1`, id)
}

// GetByOwnerID fetches a company (with owner) by owning user; (nil, nil) when absent.
func (r *CompanyRepo) GetByOwnerID(ctx context.Context, ownerID string) (*entity.Company, error) {
	return r.getOne(ctx, companySelect+` WHERE c.owner_id = $1`, ownerID)
}

// Update applies a partial update and returns the updated row (with owner);
// (nil, nil) when no row matches. updated_at is always refreshed, even for an
// otherwise empty update.
func (r *CompanyRepo) Update(ctx context.Context, id string, upd entity.CompanyUpdate) (*entity.Company, error) {
	sets := make([]string, 0, 11)
	args := make([]interface{}, 0, 12)
	add := func(col string, val interface{}) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if upd.CompanyName != nil {
		add("company_name", *upd.CompanyName)
	}
	if upd.CompanyType != nil {
		add("company_type", *upd.CompanyType)
	}
	if upd.Industry != nil {
		add("industry", *upd.Industry)
	}
	if upd.EmployeeCount != nil {
		add("employee_count", *upd.EmployeeCount)
	}
	if upd.Address != nil {
		add("address", *upd.Address)
	}
	if upd.City != nil {
		add("city", *upd.City)
	}
	if upd.State != nil {
		add("state", *upd.State)
	}
	if upd.Pincode != nil {
		add("pincode", *upd.Pincode)
	}
	if upd.CompanyDescription != nil {
		add("company_description", *upd.CompanyDescription)
	}
	if upd.Website != nil {
		add("website", nullIfEmpty(*upd.Website))
	}
	add("updated_at", time.Now().UTC())

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE companies SET %s WHERE id = $%d`,
		strings.Join(sets, ", "), len(args),
	)

	cmd, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

// List returns companies ordered by creation time descending. Status and type
// filter by equality, city and state by case-insensitive substring.
func (r *CompanyRepo) List(ctx context.Context, limit, offset int, filter entity.CompanyFilter) ([]*entity.Company, error) {
	var where []string
	var args []interface{}
	arg := func(val interface{}) int {
		args = append(args, val)
		return len(args)
	}

	if filter.VerificationStatus != "" {
		where = append(where, fmt.Sprintf("c.verification_status = $%d", arg(filter.VerificationStatus)))
	}
	if filter.CompanyType != "" {
		where = append(where, fmt.Sprintf("c.company_type = $%d", arg(filter.CompanyType)))
	}
	if filter.City != "" {
		where = append(where, fmt.Sprintf("c.city ILIKE '%%' || $%d || '%%'", arg(filter.City)))
	}
	if filter.State != "" {
		where = append(where, fmt.Sprintf("c.state ILIKE '%%' || $%d || '%%'", arg(filter.State)))
	}

	query := companySelect
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += fmt.Sprintf(" ORDER BY c.created_at DESC LIMIT $%d OFFSET $%d", arg(limit), arg(offset))

	return r.queryMany(ctx, query, args...)
}

// Search matches the term case-insensitively as a substring of company_name,
// industry, city or state (OR across all four).
func (r *CompanyRepo) Search(ctx context.Context, term string, limit int) ([]*entity.Company, error) {
	query := companySelect + `
		WHERE c.company_name ILIKE '%' || $1 || '%'
		   OR c.industry     ILIKE '%' || $1 || '%'
		   OR c.city         ILIKE '%' || $1 || '%'
		   OR c.state        ILIKE '%' || $1 || '%'
		ORDER BY c.created_at DESC
		LIMIT $2`
	return r.queryMany(ctx, query, term, limit)
}

// SetVerificationStatus sets the review state, stores notes only when
// provided, and always refreshes updated_at; (nil, nil) when no row matches.
func (r *CompanyRepo) SetVerificationStatus(ctx context.Context, id, status string, notes *string) (*entity.Company, error) {
	var cmd pgconn.CommandTag
	var err error
	if notes != nil {
		cmd, err = r.pool.Exec(ctx,
			`UPDATE companies SET verification_status = $2, verification_notes = $3, updated_at = $4 WHERE id = $1`,
			id, status, *notes, time.Now().UTC())
	} else {
		cmd, err = r.pool.Exec(ctx,
			`UPDATE companies SET verification_status = $2, updated_at = $3 WHERE id = $1`,
			id, status, time.Now().UTC())
	}
	if err != nil {
		return nil, fmt.Errorf("update verification status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

func (r *CompanyRepo) getOne(ctx context.Context, query string, arg interface{}) (*entity.Company, error) {
	company, err := scanCompany(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return company, nil
}

func (r *CompanyRepo) queryMany(ctx context.Context, query string, args ...interface{}) ([]*entity.Company, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func scanCompany(row pgx.Row) (*entity.Company, error) {
	var c entity.Company
	var owner entity.CompanyOwner
	err := row.Scan(
		&c.ID, &c.OwnerID, &c.CompanyName, &c.CompanyType, &c.Industry,
		&c.EmployeeCount, &c.Address, &c.City, &c.State, &c.Pincode,
		&c.CompanyDescription, &c.Website, &c.VerificationStatus,
		&c.VerificationNotes, &c.CreatedAt, &c.UpdatedAt,
		&owner.ID, &owner.ClerkID, &owner.Email, &owner.FullName, &owner.MobileNo,
	)
	if err != nil {
		return nil, err
	}
	c.Owner = &owner
	return &c, nil
}
