package console

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"layered-user-service/internal/domain/user"
)

func setupObservedRepo() (*UserRepoConsole, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	return NewUserRepoConsole(zap.New(core)), logs
}

func TestUserRepoConsole_Save(t *testing.T) {
	repo, logs := setupObservedRepo()

	u := &user.User{
		ID:    "3f2c7a1e-9d7b-4f7e-8c3a-1b2d3e4f5a6b",
		Name:  "John Doe",
		Email: "john.doe@example.com",
	}

	err := repo.Save(context.Background(), u)
	require.NoError(t, err)

	entries := logs.FilterMessage("user created").All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, u.ID, fields["id"])
	assert.Equal(t, u.Name, fields["name"])
	assert.Equal(t, u.Email, fields["email"])
}

func TestUserRepoConsole_Save_NilUser(t *testing.T) {
	repo, logs := setupObservedRepo()

	err := repo.Save(context.Background(), nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "user cannot be nil")
	assert.Zero(t, logs.Len())
}
