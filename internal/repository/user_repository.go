package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smallbizniz/support-portal/internal/domain"
)

// UserRepository defines persistence access for identity records.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	ListActiveAdmins(ctx context.Context) ([]domain.User, error)
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a document-store backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	return insertDoc(ctx, r.pool, collectionUsers, user.ID, user)
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	return replaceDoc(ctx, r.pool, collectionUsers, user.ID, user)
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := getDoc(ctx, r.pool, collectionUsers, id, &user); err != nil {
		return nil, err
	}
	user.ID = id
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
        SELECT id, data FROM documents
        WHERE collection=$1 AND lower(data->>'email') = lower($2)`
	var (
		id   string
		data []byte
	)
	if err := r.pool.QueryRow(ctx, query, collectionUsers, email).Scan(&id, &data); err != nil {
		return nil, err
	}
	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	user.ID = id
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	const query = `
        SELECT id, data FROM documents
        WHERE collection=$1 ORDER BY data->>'createdAt' DESC`
	rows, err := r.pool.Query(ctx, query, collectionUsers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanUsers(rows)
}

func (r *userRepository) ListActiveAdmins(ctx context.Context) ([]domain.User, error) {
	const query = `
        SELECT id, data FROM documents
        WHERE collection=$1 AND data->>'role'='admin' AND data->>'isActive'='true'`
	rows, err := r.pool.Query(ctx, query, collectionUsers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanUsers(rows)
}

func scanUsers(rows pgx.Rows) ([]domain.User, error) {
	var result []domain.User
	for rows.Next() {
		var (
			id   string
			data []byte
		)
		if err := rows.Scan(&id, &data); err != nil {
			return nil, err
		}
		var user domain.User
		if err := json.Unmarshal(data, &user); err != nil {
			return nil, err
		}
		user.ID = id
		result = append(result, user)
	}
	return result, rows.Err()
}
