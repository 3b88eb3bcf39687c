package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jvdberg/go-api-base/auth"
	"github.com/jvdberg/go-api-base/database"
	"github.com/jvdberg/go-api-base/model"
	"github.com/jvdberg/go-api-base/random"
	"github.com/jvdberg/go-api-base/store"
)

func newAuthenticator(t *testing.T) (auth.Authenticator, store.UserStore, store.SessionStore) {
	t.Helper()

	db := database.NewTestDatabase(t)
	userStore := store.NewUserStore(db)
	sessionStore := store.NewSessionStore(db)

	return auth.NewAuthenticator(userStore, sessionStore, 24*time.Hour), userStore, sessionStore
}

func TestLoginIssuesSession(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	authenticator, _, sessionStore := newAuthenticator(t)

	session, user, err := authenticator.Login(ctx, database.TestAdminEmail, database.TestAdminPassword)
	if err != nil {
		t.Fatalf("login with correct credentials failed: %v", err)
	}
	if session.Id == "" {
		t.Error("expected a session identifier")
	}
	if user.Email != database.TestAdminEmail {
		t.Errorf("got user email %q, want %q", user.Email, database.TestAdminEmail)
	}

	stored, err := sessionStore.GetById(ctx, session.Id)
	if err != nil {
		t.Fatalf("issued session not persisted: %v", err)
	}
	if stored.UserId != user.Id {
		t.Errorf("session belongs to %s, want %s", stored.UserId, user.Id)
	}
	if stored.ExpiresAt <= time.Now().UTC().Unix() {
		t.Error("issued session already expired")
	}
}

func TestLoginFailsUniformly(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	authenticator, _, _ := newAuthenticator(t)

	_, _, wrongPassword := authenticator.Login(ctx, database.TestAdminEmail, "not-the-password")
	_, _, unknownEmail := authenticator.Login(ctx, "nobody@example.com", "whatever")

	if !errors.Is(wrongPassword, auth.ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassword)
	}
	if !errors.Is(unknownEmail, auth.ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", unknownEmail)
	}
}

func TestValidateIssuedSession(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	authenticator, _, _ := newAuthenticator(t)

	session, user, err := authenticator.Login(ctx, database.TestAdminEmail, database.TestAdminPassword)
	if err != nil {
		t.Fatal(err)
	}

	validation, err := authenticator.Validate(ctx, session.Id)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if !validation.Valid {
		t.Fatal("freshly issued session should be valid")
	}
	if validation.User.Id != user.Id {
		t.Errorf("validation resolved user %s, want %s", validation.User.Id, user.Id)
	}
}

func TestValidateUnknownSession(t *testing.T) {
	t.Parallel()

	authenticator, _, _ := newAuthenticator(t)

	validation, err := authenticator.Validate(context.Background(), "completely-made-up")
	if err != nil {
		t.Fatalf("unknown session must not be an error: %v", err)
	}
	if validation.Valid {
		t.Error("unknown session validated as valid")
	}
}

func TestValidateExpiredSession(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	authenticator, userStore, sessionStore := newAuthenticator(t)

	admin, err := userStore.GetByEmail(ctx, database.TestAdminEmail)
	if err != nil {
		t.Fatal(err)
	}

	now := time.Now().UTC()
	expired := model.Session{
		Id:        random.NewString(32),
		UserId:    admin.Id,
		ExpiresAt: now.Add(-time.Minute).Unix(),
		CreatedAt: now.Add(-25 * time.Hour).Unix(),
	}
	if err := sessionStore.Create(ctx, expired); err != nil {
		t.Fatal(err)
	}

	validation, err := authenticator.Validate(ctx, expired.Id)
	if err != nil {
		t.Fatalf("expired session must not be an error: %v", err)
	}
	if validation.Valid {
		t.Error("expired session validated as valid")
	}

	// The stale row is removed lazily on validation
	if _, err := sessionStore.GetById(ctx, expired.Id); !errors.Is(err, store.ErrSessionNotFound) {
		t.Errorf("expected stale session to be removed, got %v", err)
	}
}

func TestValidateAfterUserDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	authenticator, userStore, _ := newAuthenticator(t)

	session, user, err := authenticator.Login(ctx, database.TestAdminEmail, database.TestAdminPassword)
	if err != nil {
		t.Fatal(err)
	}

	if err := userStore.DeleteById(ctx, user.Id); err != nil {
		t.Fatal(err)
	}

	validation, err := authenticator.Validate(ctx, session.Id)
	if err != nil {
		t.Fatalf("validate after user delete must not be an error: %v", err)
	}
	if validation.Valid {
		t.Error("session of a deleted user validated as valid")
	}
}

func TestLogout(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	authenticator, _, _ := newAuthenticator(t)

	session, _, err := authenticator.Login(ctx, database.TestAdminEmail, database.TestAdminPassword)
	if err != nil {
		t.Fatal(err)
	}

	if err := authenticator.Logout(ctx, session.Id); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	validation, err := authenticator.Validate(ctx, session.Id)
	if err != nil {
		t.Fatal(err)
	}
	if validation.Valid {
		t.Error("session still valid after logout")
	}

	// Logging out twice is fine
	if err := authenticator.Logout(ctx, session.Id); err != nil {
		t.Errorf("second logout failed: %v", err)
	}
}
