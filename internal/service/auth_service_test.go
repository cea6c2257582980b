package service

import (
	"context"
	"testing"
	"time"

	"paint-advisor-be/internal/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_RegisterHashesPassword(t *testing.T) {
	uow := newFakeUow()
	svc := NewAuthService(uow, "test-secret", time.Hour, nil)

	res, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "anna@example.com",
		Password: "correct horse battery",
		FullName: "Anna Painter",
	})
	require.NoError(t, err)
	require.NotNil(t, res)

	stored := uow.users.byId[res.Id]
	require.NotNil(t, stored)
	assert.NotEqual(t, "correct horse battery", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(stored.PasswordHash), []byte("correct horse battery")))
}

func TestAuthService_RegisterRejectsDuplicateEmail(t *testing.T) {
	uow := newFakeUow()
	svc := NewAuthService(uow, "test-secret", time.Hour, nil)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email: "anna@example.com", Password: "password-one", FullName: "Anna",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &dto.RegisterRequest{
		Email: "anna@example.com", Password: "password-two", FullName: "Other Anna",
	})
	assert.EqualError(t, err, "email already registered")
}

func TestAuthService_LoginIssuesToken(t *testing.T) {
	uow := newFakeUow()
	svc := NewAuthService(uow, "test-secret", time.Hour, nil)

	reg, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email: "anna@example.com", Password: "correct horse battery", FullName: "Anna Painter",
	})
	require.NoError(t, err)

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "anna@example.com", Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, "Anna Painter", res.FullName)
	assert.True(t, res.ExpiresAt.After(time.Now()))

	token, err := jwt.Parse(res.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, reg.Id.String(), claims["user_id"])
}

func TestAuthService_LoginRejectsBadCredentials(t *testing.T) {
	uow := newFakeUow()
	svc := NewAuthService(uow, "test-secret", time.Hour, nil)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email: "anna@example.com", Password: "correct horse battery", FullName: "Anna",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email: "anna@example.com", Password: "wrong password",
	})
	assert.EqualError(t, err, "invalid credentials")

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email: "nobody@example.com", Password: "whatever",
	})
	assert.EqualError(t, err, "invalid credentials")
}

func TestAuthService_MeReturnsProfile(t *testing.T) {
	uow := newFakeUow()
	svc := NewAuthService(uow, "test-secret", time.Hour, nil)

	reg, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email: "anna@example.com", Password: "correct horse battery", FullName: "Anna Painter",
	})
	require.NoError(t, err)

	me, err := svc.Me(context.Background(), reg.Id)
	require.NoError(t, err)
	assert.Equal(t, "anna@example.com", me.Email)
	assert.Equal(t, "Anna Painter", me.FullName)
	assert.Equal(t, "user", me.Role)

	_, err = svc.Me(context.Background(), uuid.New())
	assert.EqualError(t, err, "user not found")
}
