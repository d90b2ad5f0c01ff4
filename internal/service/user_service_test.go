package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRejectsExistingEmail(t *testing.T) {
	f := newFixture(t)

	_, err := f.userSvc.Register(context.Background(), "student@test", "other", "1990-01-01")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterRequiresEmailAndPassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.userSvc.Register(ctx, "", "pw", "1990-01-01")
	assert.Error(t, err)
	_, err = f.userSvc.Register(ctx, "x@test", "", "1990-01-01")
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.userSvc.Login(ctx, "student@test", "secret")
	require.NoError(t, err)
	assert.Equal(t, f.user.ID, user.ID)

	_, err = f.userSvc.Login(ctx, "student@test", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.userSvc.Login(ctx, "ghost@test", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestChangePasswordWrongOldLeavesRowUntouched(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ok, err := f.userSvc.ChangePassword(ctx, f.user.ID, "wrong", "new")
	require.NoError(t, err)
	assert.False(t, ok)

	// Old password still works.
	_, err = f.userSvc.Login(ctx, "student@test", "secret")
	assert.NoError(t, err)
}

func TestChangePasswordAndBirthDate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ok, err := f.userSvc.ChangePassword(ctx, f.user.ID, "secret", "better")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = f.userSvc.Login(ctx, "student@test", "better")
	assert.NoError(t, err)

	ok, err = f.userSvc.UpdateBirthDate(ctx, f.user.ID, "2002-02-02")
	require.NoError(t, err)
	assert.True(t, ok)

	user, err := f.userSvc.GetUser(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, "2002-02-02", user.BirthDate)
}
