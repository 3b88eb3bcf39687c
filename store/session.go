package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/jvdberg/go-api-base/model"
)

var ErrSessionNotFound = errors.New("session store: session not found")

type SessionStore interface {
	Create(ctx context.Context, session model.Session) error
	GetById(ctx context.Context, id string) (model.Session, error)
	GetByUserId(ctx context.Context, userId uuid.UUID) ([]model.Session, error)
	DeleteById(ctx context.Context, id string) error
	DeleteExpiredBefore(ctx context.Context, timestamp int64) (int64, error)
}

type sessionStore struct {
	db *sql.DB
}

func NewSessionStore(db *sql.DB) SessionStore {
	return &sessionStore{
		db,
	}
}

func (store *sessionStore) Create(ctx context.Context, session model.Session) error {
	_, err := store.db.ExecContext(ctx, "INSERT INTO tbl_session (id, user_id, expires_at, created_at) VALUES (?,?,?,?);",
		session.Id, session.UserId, session.ExpiresAt, session.CreatedAt,
	)
	return err
}

func (store *sessionStore) GetById(ctx context.Context, id string) (model.Session, error) {
	row := store.db.QueryRowContext(ctx, "SELECT id, user_id, expires_at, created_at FROM tbl_session WHERE id = ? LIMIT 1;", id)

	var session model.Session
	if err := row.Scan(&session.Id, &session.UserId, &session.ExpiresAt, &session.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return session, ErrSessionNotFound
		}
		return session, err
	}
	return session, nil
}

func (store *sessionStore) GetByUserId(ctx context.Context, userId uuid.UUID) ([]model.Session, error) {
	rows, err := store.db.QueryContext(ctx, "SELECT id, user_id, expires_at, created_at FROM tbl_session WHERE user_id = ?;", userId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []model.Session
	for rows.Next() {
		var session model.Session
		if err := rows.Scan(&session.Id, &session.UserId, &session.ExpiresAt, &session.CreatedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	return sessions, rows.Err()
}

func (store *sessionStore) DeleteById(ctx context.Context, id string) error {
	result, err := store.db.ExecContext(ctx, "DELETE FROM tbl_session WHERE id = ?;", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (store *sessionStore) DeleteExpiredBefore(ctx context.Context, timestamp int64) (int64, error) {
	result, err := store.db.ExecContext(ctx, "DELETE FROM tbl_session WHERE expires_at <= ?;", timestamp)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
