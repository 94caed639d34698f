package service

import (
	"context"
	"course_backend/internal/model"
	"course_backend/internal/repository"
	"course_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	store := newTestStore(t)
	return NewAuthService(
		repository.NewTeacherRepository(store),
		repository.NewUserRepository(store),
		repository.NewTokenDenylist(nil),
		testConfig(t),
	)
}

func TestSignupAndLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	teacher, err := svc.Signup(ctx, SignupInput{
		FirstName: "Grace", LastName: "Hopper", Email: "Grace@Example.com",
		Password: "cobol", Kind: model.KindTeacher, Skills: "compilers",
	})
	require.NoError(t, err)
	assert.Equal(t, model.KindTeacher, teacher.Kind)

	user, err := svc.Signup(ctx, SignupInput{
		FirstName: "Alan", LastName: "Turing", Email: "alan@example.com",
		Password: "enigma", Kind: model.KindUser,
	})
	require.NoError(t, err)

	res, err := svc.Login(ctx, "grace@example.com", "cobol")
	require.NoError(t, err)
	assert.Equal(t, model.KindTeacher, res.UserType)
	assert.Equal(t, teacher.ID, res.UserID)

	claims, err := util.ParseJWT(res.Token, svc.Cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, teacher.ID, claims.AccountID)
	assert.NotEmpty(t, claims.ID)

	res, err = svc.Login(ctx, "alan@example.com", "enigma")
	require.NoError(t, err)
	assert.Equal(t, model.KindUser, res.UserType)
	assert.Equal(t, user.ID, res.UserID)

	_, err = svc.Login(ctx, "alan@example.com", "wrong")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
	_, err = svc.Login(ctx, "nobody@example.com", "x")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	profile, err := svc.Profile(ctx, teacher)
	require.NoError(t, err)
	assert.Equal(t, "compilers", profile.(*model.Teacher).Skills)
}

func TestLoginSharedEmailPicksMatchingAccount(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	teacher, err := svc.Signup(ctx, SignupInput{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
		Password: "teach", Kind: model.KindTeacher, Skills: "math",
	})
	require.NoError(t, err)
	user, err := svc.Signup(ctx, SignupInput{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
		Password: "learn", Kind: model.KindUser,
	})
	require.NoError(t, err)

	res, err := svc.Login(ctx, "ada@example.com", "learn")
	require.NoError(t, err)
	assert.Equal(t, model.KindUser, res.UserType)
	assert.Equal(t, user.ID, res.UserID)

	res, err = svc.Login(ctx, "ada@example.com", "teach")
	require.NoError(t, err)
	assert.Equal(t, model.KindTeacher, res.UserType)
	assert.Equal(t, teacher.ID, res.UserID)

	_, err = svc.Login(ctx, "ada@example.com", "neither")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestSignupValidation(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		in   SignupInput
	}{
		{"digits in name", SignupInput{FirstName: "R2", LastName: "D", Email: "r@x.com", Password: "p", Kind: model.KindUser}},
		{"unknown kind", SignupInput{FirstName: "A", LastName: "B", Email: "a@x.com", Password: "p", Kind: "admin"}},
		{"teacher without skills", SignupInput{FirstName: "A", LastName: "B", Email: "a@x.com", Password: "p", Kind: model.KindTeacher}},
		{"empty password", SignupInput{FirstName: "A", LastName: "B", Email: "a@x.com", Kind: model.KindUser}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Signup(ctx, tt.in)
			assert.ErrorIs(t, err, util.ErrValidation)
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	in := SignupInput{FirstName: "Alan", LastName: "Turing", Email: "alan@example.com", Password: "p", Kind: model.KindUser}
	_, err := svc.Signup(ctx, in)
	require.NoError(t, err)

	_, err = svc.Signup(ctx, in)
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestLogoutWithoutRedis(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, claims, err := util.GenerateJWT(model.Principal{ID: 1, Kind: model.KindUser}, svc.Cfg.JWT.Secret, svc.Cfg.JWT.ExpireTime)
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx, claims))

	revoked, err := svc.IsRevoked(ctx, claims.ID)
	require.NoError(t, err)
	assert.False(t, revoked)
}
