package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Collection names. One row in the documents table per entity, keyed by a
// generated id; dates live inside the JSON payload as ISO-8601 strings.
const (
	collectionUsers         = "users"
	collectionTickets       = "tickets"
	collectionRegistrations = "registrationRequests"
	collectionSettings      = "settings"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so repository
// helpers can run inside or outside a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func insertDoc(ctx context.Context, q querier, collection, id string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = q.Exec(ctx,
		`INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3)`,
		collection, id, data)
	return err
}

func replaceDoc(ctx context.Context, q querier, collection, id string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	cmd, err := q.Exec(ctx,
		`UPDATE documents SET data=$3 WHERE collection=$1 AND id=$2`,
		collection, id, data)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// mergeDoc upserts with shallow-merge semantics, used by the singleton
// settings documents.
func mergeDoc(ctx context.Context, q querier, collection, id string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = q.Exec(ctx, `
        INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3)
        ON CONFLICT (collection, id) DO UPDATE SET data = documents.data || EXCLUDED.data`,
		collection, id, data)
	return err
}

func getDoc(ctx context.Context, q querier, collection, id string, dest any) error {
	var data []byte
	if err := q.QueryRow(ctx,
		`SELECT data FROM documents WHERE collection=$1 AND id=$2`,
		collection, id).Scan(&data); err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}
