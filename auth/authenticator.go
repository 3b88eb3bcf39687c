package auth

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jvdberg/go-api-base/model"
	"github.com/jvdberg/go-api-base/random"
	"github.com/jvdberg/go-api-base/store"
)

// ErrInvalidCredentials is returned for an unknown email and for a wrong
// password alike, so callers cannot tell registered emails apart.
var ErrInvalidCredentials = errors.New("auth: invalid credentials")

const sessionIdLength = 32

// Validation is the outcome of checking a session identifier. A missing or
// expired session is a routine Valid=false result, not an error.
type Validation struct {
	Valid bool
	User  model.User
}

type Authenticator interface {
	Login(ctx context.Context, email, password string) (model.Session, model.User, error)
	Validate(ctx context.Context, sessionId string) (Validation, error)
	Logout(ctx context.Context, sessionId string) error
}

type authenticator struct {
	userStore    store.UserStore
	sessionStore store.SessionStore
	lifetime     time.Duration
}

func NewAuthenticator(userStore store.UserStore, sessionStore store.SessionStore, lifetime time.Duration) Authenticator {
	return &authenticator{
		userStore:    userStore,
		sessionStore: sessionStore,
		lifetime:     lifetime,
	}
}

func (authenticator *authenticator) Login(ctx context.Context, email, password string) (model.Session, model.User, error) {
	var session model.Session

	user, err := authenticator.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return session, user, ErrInvalidCredentials
		}
		return session, user, err
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return session, user, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	session = model.Session{
		Id:        random.NewString(sessionIdLength),
		UserId:    user.Id,
		ExpiresAt: now.Add(authenticator.lifetime).Unix(),
		CreatedAt: now.Unix(),
	}

	if err := authenticator.sessionStore.Create(ctx, session); err != nil {
		return session, user, err
	}

	return session, user, nil
}

func (authenticator *authenticator) Validate(ctx context.Context, sessionId string) (Validation, error) {
	session, err := authenticator.sessionStore.GetById(ctx, sessionId)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return Validation{}, nil
		}
		return Validation{}, err
	}

	if session.Expired(time.Now().UTC()) {
		// Lazy cleanup, there is no background sweep
		if err := authenticator.sessionStore.DeleteById(ctx, session.Id); err != nil && !errors.Is(err, store.ErrSessionNotFound) {
			return Validation{}, err
		}
		return Validation{}, nil
	}

	user, err := authenticator.userStore.GetById(ctx, session.UserId)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return Validation{}, nil
		}
		return Validation{}, err
	}

	return Validation{Valid: true, User: user}, nil
}

func (authenticator *authenticator) Logout(ctx context.Context, sessionId string) error {
	if err := authenticator.sessionStore.DeleteById(ctx, sessionId); err != nil && !errors.Is(err, store.ErrSessionNotFound) {
		return err
	}
	return nil
}
