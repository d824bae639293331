package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"editorial/internal/domain"
	"editorial/internal/domain/models"
	"editorial/internal/domain/repositories"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const usersTable = "usuarios"

// PostgresUserRepository implements the UserRepository interface.
type PostgresUserRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewUserRepository creates a new user repository.
func NewUserRepository(pool *pgxpool.Pool, logger *slog.Logger) repositories.UserRepository {
	return &PostgresUserRepository{pool: pool, logger: logger}
}

// EnsureSchema creates the usuarios table if it does not exist.
func (r *PostgresUserRepository) EnsureSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			senha_hash TEXT NOT NULL,
			nome TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`, usersTable)

	if _, err := r.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("create %s table: %w", usersTable, err)
	}

	r.logger.Info("users table ready", "table", usersTable)
	return nil
}

// Create inserts a user and fills in ID and timestamps.
func (r *PostgresUserRepository) Create(ctx context.Context, user *models.User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (email, senha_hash, nome, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING id, created_at, updated_at
	`, usersTable)

	err := r.pool.QueryRow(ctx, query,
		user.Email,
		user.SenhaHash,
		nullable(user.Nome),
		time.Now(),
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if isDuplicateError(err) {
			return &domain.ConflictError{
				Message:      "Este email já está cadastrado.",
				ResourceType: "user",
				ResourceID:   user.Email,
			}
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

// GetByEmail retrieves a user by email.
func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT id, email, senha_hash, COALESCE(nome, ''), created_at, updated_at
		FROM %s
		WHERE email = $1
	`, usersTable)

	return r.scanUser(r.pool.QueryRow(ctx, query, email), email)
}

// GetByID retrieves a user by id.
func (r *PostgresUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT id, email, senha_hash, COALESCE(nome, ''), created_at, updated_at
		FROM %s
		WHERE id = $1
	`, usersTable)

	return r.scanUser(r.pool.QueryRow(ctx, query, id), fmt.Sprintf("%d", id))
}

func (r *PostgresUserRepository) scanUser(row pgx.Row, ref string) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.SenhaHash,
		&user.Nome,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", ref, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

// nullable maps the empty string to SQL NULL for optional columns.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// isDuplicateError checks for a unique constraint violation (23505).
func isDuplicateError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
