// Package seed creates default records required for a usable installation.
package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/deniz/classbooker/internal/app/models"
	appRepos "github.com/deniz/classbooker/internal/app/repositories"
	"github.com/deniz/classbooker/internal/config"
	"github.com/deniz/classbooker/internal/pkg/apperrors"
	"github.com/deniz/classbooker/internal/pkg/auth"
)

const (
	defaultAdminEmail = "admin@classbooker.app"
	defaultAdminName  = "Administrator"
)

// CreateDefaultData ensures a default admin account exists. Role assignment
// is admin-only, so a fresh installation needs one admin to bootstrap from.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	if _, err := userRepo.GetByEmail(ctx, defaultAdminEmail); err == nil {
		return nil
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}

	password := config.GetEnv("ADMIN_INITIAL_PASSWORD", "change-me-on-first-login")
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &appModels.User{
		Email:    defaultAdminEmail,
		Password: hashed,
		Name:     defaultAdminName,
		Role:     appModels.RoleAdmin,
	}

	if _, err := userRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		return err
	}

	lgr.Info().Str("email", defaultAdminEmail).Msg("Default admin account created")
	return nil
}
