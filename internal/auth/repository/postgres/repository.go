package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/koobs97/BonsCore-sub000/internal/auth/domain"
	autherror "github.com/koobs97/BonsCore-sub000/internal/errors"
)

// DB is the subset of pgxpool.Pool the repository uses; pgxmock satisfies it
// in tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `
		SELECT id, password_hash, COALESCE(nickname, ''), COALESCE(email, ''), role,
		       requires_step_up, locked, dormant, withdrawn,
		       COALESCE(last_login_at, 'epoch'::timestamptz), created_at, updated_at
		FROM accounts
		WHERE id = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, id)

	var account domain.Account
	err := row.Scan(&account.ID, &account.PasswordHash, &account.Nickname, &account.Email,
		&account.Role, &account.RequiresStepUp, &account.Locked, &account.Dormant,
		&account.Withdrawn, &account.LastLoginAt, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, autherror.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account by id: %w", err)
	}

	return &account, nil
}

func (r *PostgresRepository) UpdateStepUpFlag(ctx context.Context, id string, requiresStepUp bool) error {
	_, err := r.db.Exec(ctx, `
		UPDATE accounts
		SET requires_step_up = $2, updated_at = now()
		WHERE id = $1
	`, id, requiresStepUp)
	return err
}

func (r *PostgresRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE accounts
		SET last_login_at = $2, updated_at = now()
		WHERE id = $1
	`, id, at)
	return err
}

func (r *PostgresRepository) Append(ctx context.Context, record *domain.LoginHistoryRecord) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO login_history (id, account_id, ip_address, country_code, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, record.ID, record.AccountID, record.IPAddress, record.CountryCode, record.CreatedAt)
	return err
}

func (r *PostgresRepository) RecentCountries(ctx context.Context, accountID string, limit int) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT country_code
		FROM login_history
		WHERE account_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent countries: %w", err)
	}
	defer rows.Close()

	var countries []string
	for rows.Next() {
		var country string
		if err := rows.Scan(&country); err != nil {
			return nil, fmt.Errorf("failed to scan country code: %w", err)
		}
		countries = append(countries, country)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recent countries: %w", err)
	}

	return countries, nil
}
