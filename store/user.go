package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	"github.com/jvdberg/go-api-base/model"
)

var (
	ErrUserNotFound      = errors.New("user store: user not found")
	ErrUserAlreadyExists = errors.New("user store: user already exists")
)

type UserStore interface {
	Create(ctx context.Context, user model.User) error
	GetById(ctx context.Context, id uuid.UUID) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	All(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, user model.User) error
	DeleteById(ctx context.Context, id uuid.UUID) error
}

type userStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) UserStore {
	return &userStore{
		db,
	}
}

func (store *userStore) Create(ctx context.Context, user model.User) error {
	_, err := store.db.ExecContext(ctx, "INSERT INTO tbl_user (id, name, email, password_hash, created_at, updated_at) VALUES (?,?,?,?,?,?);",
		user.Id, user.Name, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return ErrUserAlreadyExists
	}
	return err
}

func (store *userStore) GetById(ctx context.Context, id uuid.UUID) (model.User, error) {
	row := store.db.QueryRowContext(ctx, "SELECT id, name, email, password_hash, created_at, updated_at FROM tbl_user WHERE id = ? LIMIT 1;", id)

	var user model.User
	if err := row.Scan(&user.Id, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user, ErrUserNotFound
		}
		return user, err
	}
	return user, nil
}

func (store *userStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	row := store.db.QueryRowContext(ctx, "SELECT id, name, email, password_hash, created_at, updated_at FROM tbl_user WHERE email = ? LIMIT 1;", email)

	var user model.User
	if err := row.Scan(&user.Id, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user, ErrUserNotFound
		}
		return user, err
	}
	return user, nil
}

func (store *userStore) All(ctx context.Context) ([]model.User, error) {
	rows, err := store.db.QueryContext(ctx, "SELECT id, name, email, password_hash, created_at, updated_at FROM tbl_user ORDER BY created_at;")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var user model.User
		if err := rows.Scan(&user.Id, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

func (store *userStore) Update(ctx context.Context, user model.User) error {
	result, err := store.db.ExecContext(ctx, "UPDATE tbl_user SET name = ?, email = ?, password_hash = ?, updated_at = ? WHERE id = ?;",
		user.Name, user.Email, user.PasswordHash, user.UpdatedAt, user.Id,
	)
	if isUniqueViolation(err) {
		return ErrUserAlreadyExists
	}
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (store *userStore) DeleteById(ctx context.Context, id uuid.UUID) error {
	result, err := store.db.ExecContext(ctx, "DELETE FROM tbl_user WHERE id = ?;", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
