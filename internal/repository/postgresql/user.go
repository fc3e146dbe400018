package postgresql

import (
	"context"
	"fmt"

	"github.com/gestionale-hr/hr-backend-go/internal/domain/user"
	"github.com/gestionale-hr/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.Repository {
	return &userRepositoryImpl{db: db}
}

// Create implements user.Repository.
func (r *userRepositoryImpl) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (id, email, password_hash, role, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, NOW(), NOW())
		RETURNING id, email, password_hash, role, created_at, updated_at
	`

	var result user.User
	err := q.QueryRow(ctx, query, u.Email, u.PasswordHash, u.Role).Scan(
		&result.ID,
		&result.Email,
		&result.PasswordHash,
		&result.Role,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return result, nil
}

// GetByID implements user.Repository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	return r.getBy(ctx, "id", id)
}

// GetByEmail implements user.Repository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return r.getBy(ctx, "email", email)
}

func (r *userRepositoryImpl) getBy(ctx context.Context, column, value string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT id, email, password_hash, role, created_at, updated_at
		FROM users
		WHERE %s = $1
	`, column)

	var result user.User
	err := q.QueryRow(ctx, query, value).Scan(
		&result.ID,
		&result.Email,
		&result.PasswordHash,
		&result.Role,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return result, nil
}
