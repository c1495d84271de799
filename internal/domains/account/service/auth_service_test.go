package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/account"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/account/model"
	"github.com/Melodious-nub/bnp-digital-backend/pkg/jwt"
)

type fakeAccountRepo struct {
	byID       map[int64]*model.User
	byUsername map[string]*model.User
	superAdmin string
}

func newFakeAccountRepo(users ...*model.User) *fakeAccountRepo {
	r := &fakeAccountRepo{
		byID:       map[int64]*model.User{},
		byUsername: map[string]*model.User{},
	}
	for _, u := range users {
		r.byID[u.ID] = u
		r.byUsername[u.Username] = u
	}
	return r
}

func (r *fakeAccountRepo) Create(ctx context.Context, username, passwordHash, role string) (*model.User, error) {
	u := &model.User{ID: int64(len(r.byID) + 1), Username: username, PasswordHash: passwordHash, Role: role}
	r.byID[u.ID] = u
	r.byUsername[u.Username] = u
	return u, nil
}

func (r *fakeAccountRepo) FindByID(ctx context.Context, id int64) (*model.User, error) {
	if u, ok := r.byID[id]; ok {
		return u, nil
	}
	return nil, account.ErrUserNotFound
}

func (r *fakeAccountRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	if u, ok := r.byUsername[username]; ok {
		return u, nil
	}
	return nil, account.ErrUserNotFound
}

func (r *fakeAccountRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	u, ok := r.byID[id]
	if !ok {
		return account.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *fakeAccountRepo) EnsureSuperAdmin(ctx context.Context, username, passwordHash string) error {
	r.superAdmin = username
	return nil
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLogin_Success(t *testing.T) {
	repo := newFakeAccountRepo(&model.User{
		ID: 1, Username: "dhaka5", PasswordHash: mustHash(t, "Correct-pass-1"), Role: "candidate",
	})
	svc := NewAuthService(repo, jwt.NewManager("test-secret", 1))

	resp, err := svc.Login(context.Background(), &model.LoginRequest{
		Username: "dhaka5", Password: "Correct-pass-1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "dhaka5", resp.User.Username)
	assert.Equal(t, "candidate", resp.User.Role)
}

func TestLogin_SameErrorForUnknownUserAndBadPassword(t *testing.T) {
	repo := newFakeAccountRepo(&model.User{
		ID: 1, Username: "dhaka5", PasswordHash: mustHash(t, "Correct-pass-1"), Role: "candidate",
	})
	svc := NewAuthService(repo, jwt.NewManager("test-secret", 1))

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Username: "nobody", Password: "whatever",
	})
	assert.ErrorIs(t, err, account.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &model.LoginRequest{
		Username: "dhaka5", Password: "wrong",
	})
	assert.ErrorIs(t, err, account.ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	repo := newFakeAccountRepo(&model.User{
		ID: 1, Username: "dhaka5", PasswordHash: mustHash(t, "Old-pass-1"), Role: "candidate",
	})
	svc := NewAuthService(repo, jwt.NewManager("test-secret", 1))

	err := svc.ChangePassword(context.Background(), 1, &model.ChangePasswordRequest{
		CurrentPassword: "wrong", NewPassword: "New-pass-123",
	})
	assert.ErrorIs(t, err, account.ErrWrongPassword)

	err = svc.ChangePassword(context.Background(), 1, &model.ChangePasswordRequest{
		CurrentPassword: "Old-pass-1", NewPassword: "New-pass-123",
	})
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(repo.byID[1].PasswordHash), []byte("New-pass-123")))
}

func TestSeedSuperAdmin_SkippedWithoutPassword(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAuthService(repo, jwt.NewManager("test-secret", 1))

	require.NoError(t, svc.SeedSuperAdmin(context.Background(), "superadmin", ""))
	assert.Empty(t, repo.superAdmin)

	require.NoError(t, svc.SeedSuperAdmin(context.Background(), "superadmin", "Admin-pass-1"))
	assert.Equal(t, "superadmin", repo.superAdmin)
}
