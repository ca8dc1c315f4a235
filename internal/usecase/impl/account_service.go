package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	profiles repository.ProfileRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(
	profiles repository.ProfileRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		profiles: profiles,
		hasher:   hasher,
		logger:   logger,
	}
}

func toProfileView(profile *entity.Profile) *usecase.ProfileView {
	return &usecase.ProfileView{
		ID:        profile.ID,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Email:     profile.Email,
		Image:     profile.Image,
	}
}

// Signup creates a profile with all four collections empty. A duplicate email
// is reported through the output, matching the storefront's alert contract,
// rather than failing the request.
func (srv *accountService) Signup(ctx context.Context, input usecase.SignupInput) (*usecase.SignupOutput, error) {
	srv.logger.Info("Starting signup", "email", input.Email)

	_, err := srv.profiles.FindByEmail(ctx, input.Email)
	if err == nil {
		return &usecase.SignupOutput{Created: false}, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to check for existing email")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during signup", "error", err)

		return nil, errors.Wrap(err, "failed to hash password during signup")
	}

	profile := &entity.Profile{
		ID:           uuid.New(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Image:        input.Image,
		CreatedAt:    time.Now().UTC(),
	}

	if err := srv.profiles.Create(ctx, profile); err != nil {
		// The unique index can still fire under a signup race.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return &usecase.SignupOutput{Created: false}, nil
		}

		return nil, errors.Wrap(err, "failed to create profile")
	}

	srv.logger.Debug("Profile created", "userID", profile.ID)

	return &usecase.SignupOutput{Created: true, Profile: toProfileView(profile)}, nil
}

// Login resolves the profile subset for the storefront. When a password is
// supplied and a hash is stored, the pair must match.
func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.ProfileView, error) {
	profile, err := srv.profiles.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound.WrapMessage("login")
		}

		return nil, errors.Wrap(err, "failed to find profile by email")
	}

	if input.Password != "" && profile.PasswordHash != "" {
		if !srv.hasher.Check(input.Password, profile.PasswordHash) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login")
		}
	}

	srv.logger.Debug("Login successful", "userID", profile.ID)

	return toProfileView(profile), nil
}

// ListProfiles returns the profile subset for every user.
func (srv *accountService) ListProfiles(ctx context.Context) ([]usecase.ProfileView, error) {
	profiles, err := srv.profiles.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	views := make([]usecase.ProfileView, 0, len(profiles))
	for _, profile := range profiles {
		views = append(views, *toProfileView(profile))
	}

	return views, nil
}
