package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smallbizniz/support-portal/internal/domain"
)

// RegistrationRepository persists signup requests awaiting admin review.
type RegistrationRepository interface {
	CreatePending(ctx context.Context, request *domain.RegistrationRequest) error
	Update(ctx context.Context, request *domain.RegistrationRequest) error
	GetByID(ctx context.Context, id string) (*domain.RegistrationRequest, error)
	HasPendingForEmail(ctx context.Context, email string) (bool, error)
	ListAll(ctx context.Context) ([]domain.RegistrationRequest, error)
	ListPending(ctx context.Context) ([]domain.RegistrationRequest, error)
	// Approve writes the provisioned user and flips the request to approved
	// in a single transaction, so a retry after a failure cannot observe a
	// half-applied approval.
	Approve(ctx context.Context, request *domain.RegistrationRequest, user *domain.User) error
}

type registrationRepository struct {
	pool *pgxpool.Pool
}

// NewRegistrationRepository returns a document-store backed implementation.
func NewRegistrationRepository(pool *pgxpool.Pool) RegistrationRepository {
	return &registrationRepository{pool: pool}
}

// CreatePending inserts the request. A partial unique index on pending
// request emails makes this the authoritative duplicate check: a concurrent
// duplicate surfaces as SQLSTATE 23505.
func (r *registrationRepository) CreatePending(ctx context.Context, request *domain.RegistrationRequest) error {
	return insertDoc(ctx, r.pool, collectionRegistrations, request.ID, request)
}

func (r *registrationRepository) Update(ctx context.Context, request *domain.RegistrationRequest) error {
	return replaceDoc(ctx, r.pool, collectionRegistrations, request.ID, request)
}

func (r *registrationRepository) GetByID(ctx context.Context, id string) (*domain.RegistrationRequest, error) {
	var request domain.RegistrationRequest
	if err := getDoc(ctx, r.pool, collectionRegistrations, id, &request); err != nil {
		return nil, err
	}
	request.ID = id
	return &request, nil
}

func (r *registrationRepository) HasPendingForEmail(ctx context.Context, email string) (bool, error) {
	const query = `
        SELECT EXISTS (
            SELECT 1 FROM documents
            WHERE collection=$1 AND lower(data->>'email') = lower($2)
              AND data->>'status'='pending')`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, collectionRegistrations, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *registrationRepository) ListAll(ctx context.Context) ([]domain.RegistrationRequest, error) {
	const query = `
        SELECT id, data FROM documents
        WHERE collection=$1 ORDER BY data->>'createdAt' DESC`
	rows, err := r.pool.Query(ctx, query, collectionRegistrations)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRegistrations(rows)
}

func (r *registrationRepository) ListPending(ctx context.Context) ([]domain.RegistrationRequest, error) {
	const query = `
        SELECT id, data FROM documents
        WHERE collection=$1 AND data->>'status'='pending'
        ORDER BY data->>'createdAt' DESC`
	rows, err := r.pool.Query(ctx, query, collectionRegistrations)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRegistrations(rows)
}

func (r *registrationRepository) Approve(ctx context.Context, request *domain.RegistrationRequest, user *domain.User) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := insertDoc(ctx, tx, collectionUsers, user.ID, user); err != nil {
		return err
	}
	if err := replaceDoc(ctx, tx, collectionRegistrations, request.ID, request); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func scanRegistrations(rows pgx.Rows) ([]domain.RegistrationRequest, error) {
	var result []domain.RegistrationRequest
	for rows.Next() {
		var (
			id   string
			data []byte
		)
		if err := rows.Scan(&id, &data); err != nil {
			return nil, err
		}
		var request domain.RegistrationRequest
		if err := json.Unmarshal(data, &request); err != nil {
			return nil, err
		}
		request.ID = id
		result = append(result, request)
	}
	return result, rows.Err()
}
