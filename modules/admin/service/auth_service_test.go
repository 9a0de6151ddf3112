package service

import (
	"context"
	"testing"
	"time"

	"roomboard/core/config"
	"roomboard/core/errors"
	"roomboard/modules/admin/dto"
	"roomboard/modules/admin/entity"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

type fakeAdminRepo struct {
	admins map[string]*entity.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: map[string]*entity.Admin{}}
}

func (f *fakeAdminRepo) Create(ctx context.Context, username, passwordHash string) (*entity.Admin, error) {
	admin := &entity.Admin{Username: username, PasswordHash: passwordHash}
	f.admins[username] = admin
	return admin, nil
}

func (f *fakeAdminRepo) GetByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	return f.admins[username], nil
}

func (f *fakeAdminRepo) Count(ctx context.Context) (int, error) {
	return len(f.admins), nil
}

type fakeCache struct {
	values map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: map[string]string{}}
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, ok := f.values[key]
	return val, ok, nil
}

func (f *fakeCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	f.values[key] = value
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func (f *fakeCache) Client() *redis.Client { return nil }

func TestLoginRequiresCredentials(t *testing.T) {
	svc := NewAuthService(newFakeAdminRepo(), newFakeCache())

	_, appErr := svc.Login(context.Background(), &dto.LoginRequest{Username: "admin"})
	if appErr == nil || appErr.Code != errors.ErrInvalidInput {
		t.Fatalf("expected INVALID_INPUT, got %v", appErr)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	cache := newFakeCache()
	svc := NewAuthService(newFakeAdminRepo(), cache)

	_, appErr := svc.Login(context.Background(), &dto.LoginRequest{Username: "ghost", Password: "pw"})
	if appErr == nil || appErr.Code != errors.ErrUnauthorized {
		t.Fatalf("expected UNAUTHORIZED, got %v", appErr)
	}
	if cache.values["admin:login_attempts:ghost"] != "1" {
		t.Errorf("failed attempt not recorded")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeAdminRepo()
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	repo.admins["admin"] = &entity.Admin{Username: "admin", PasswordHash: string(hash)}

	svc := NewAuthService(repo, newFakeCache())
	_, appErr := svc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "wrong"})
	if appErr == nil || appErr.Code != errors.ErrUnauthorized {
		t.Fatalf("expected UNAUTHORIZED, got %v", appErr)
	}
}

func TestLoginThrottledAfterRepeatedFailures(t *testing.T) {
	cache := newFakeCache()
	cache.values["admin:login_attempts:admin"] = "5"
	svc := NewAuthService(newFakeAdminRepo(), cache)

	_, appErr := svc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "pw"})
	if appErr == nil || appErr.Code != errors.ErrUnauthorized {
		t.Fatalf("expected UNAUTHORIZED for a throttled login, got %v", appErr)
	}
}

func TestEnsureSeedAdmin(t *testing.T) {
	repo := newFakeAdminRepo()

	if err := EnsureSeedAdmin(context.Background(), repo, config.AdminConfig{Username: "admin", Password: "hunter2"}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	seeded := repo.admins["admin"]
	if seeded == nil {
		t.Fatalf("no admin created")
	}
	if bcrypt.CompareHashAndPassword([]byte(seeded.PasswordHash), []byte("hunter2")) != nil {
		t.Errorf("stored hash does not verify against the configured password")
	}

	// Non-empty table: second run must not touch anything.
	seeded.PasswordHash = "sentinel"
	if err := EnsureSeedAdmin(context.Background(), repo, config.AdminConfig{Username: "admin", Password: "other"}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if repo.admins["admin"].PasswordHash != "sentinel" {
		t.Errorf("seed must be a no-op when admins exist")
	}
}

func TestEnsureSeedAdminWithoutPassword(t *testing.T) {
	repo := newFakeAdminRepo()

	if err := EnsureSeedAdmin(context.Background(), repo, config.AdminConfig{Username: "admin"}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if len(repo.admins) != 0 {
		t.Errorf("no password configured means no account is created")
	}
}
