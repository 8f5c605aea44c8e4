package console

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"layered-user-service/internal/domain/user"
)

// UserRepoConsole implements the Repository interface by writing each record
// to the console. It provides no durability; a real persistence mechanism
// would replace it behind the same interface.
type UserRepoConsole struct {
	log *zap.Logger // Structured logger the records are written to
}

// NewUserRepoConsole creates a new instance of UserRepoConsole.
func NewUserRepoConsole(log *zap.Logger) *UserRepoConsole {
	return &UserRepoConsole{log: log}
}

// Save writes the user record to the console.
func (r *UserRepoConsole) Save(ctx context.Context, u *user.User) error {
	if u == nil {
		return errors.New("user cannot be nil")
	}

	r.log.Info("user created",
		zap.String("id", u.ID),
		zap.String("name", u.Name),
		zap.String("email", u.Email),
	)
	return nil
}
