package user

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "layered-user-service/internal/domain/user"
	apperrors "layered-user-service/pkg/errors"
)

// Repository defines the interface for user data access operations.
// It abstracts the data layer, allowing different implementations
// (e.g., console stub, a real database) to be used interchangeably.
type Repository interface {
	Save(ctx context.Context, u *domain.User) error // Persist a user record
}

// Service implements the business logic for user creation.
// It provides a clean separation between the transport layer and data layer.
type Service struct {
	repo     Repository          // Repository for data access
	log      *zap.Logger         // Logger for structured logging
	validate *validator.Validate // Validator for request validation
}

// New creates a new instance of Service with the provided repository and logger.
func New(r Repository, log *zap.Logger) *Service {
	return &Service{repo: r, log: log, validate: validator.New()}
}

// formatValidationError converts validator.ValidationErrors into a client-facing error.
func formatValidationError(err error) error {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := strings.ToLower(e.Field())
			switch e.Tag() {
			case "required":
				return apperrors.NewValidationError(field, "User "+field+" is required.")
			default:
				return apperrors.NewValidationError(field, "User "+field+" is invalid.")
			}
		}
	}
	return err
}

// CreateUser validates the request, assigns an identifier and forwards the
// record to the repository. The repository is not called when validation fails.
func (s *Service) CreateUser(ctx context.Context, in CreateUserRequest) (*CreateUserResponse, error) {
	s.log.Info("creating user", zap.String("name", in.Name), zap.String("email", in.Email))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	u := &domain.User{
		ID:    uuid.NewString(),
		Name:  in.Name,
		Email: in.Email,
	}

	if err := s.repo.Save(ctx, u); err != nil {
		s.log.Error("failed to save user", zap.String("id", u.ID), zap.Error(err))
		return nil, apperrors.NewInternalError("failed to save user", err)
	}

	return &CreateUserResponse{ID: u.ID}, nil
}
