package usecase

import (
	"context"

	"blogpessoal/internal/entity"
	"blogpessoal/internal/repo/persistent"
	"blogpessoal/pkg/logger"
)

type ThemeUseCase interface {
	CreateTheme(ctx context.Context, description string) (*entity.Theme, error)
	GetTheme(ctx context.Context, themeID string) (*entity.Theme, error)
	ListThemes(ctx context.Context) ([]*entity.Theme, error)
	SearchThemes(ctx context.Context, description string) ([]*entity.Theme, error)
	UpdateTheme(ctx context.Context, themeID, description string) (*entity.Theme, error)
	DeleteTheme(ctx context.Context, themeID string) error
}

type themeUseCase struct {
	themeRepo persistent.ThemeRepository
	logger    *logger.Logger
}

func NewThemeUseCase(themeRepo persistent.ThemeRepository, logger *logger.Logger) ThemeUseCase {
	return &themeUseCase{
		themeRepo: themeRepo,
		logger:    logger,
	}
}

func (uc *themeUseCase) CreateTheme(ctx context.Context, description string) (*entity.Theme, error) {
	theme := &entity.Theme{Description: description}
	if err := uc.themeRepo.Create(ctx, theme); err != nil {
		uc.logger.Error("Failed to create theme: %v", err)
		return nil, mapRepoError(err)
	}
	return theme, nil
}

func (uc *themeUseCase) GetTheme(ctx context.Context, themeID string) (*entity.Theme, error) {
	theme, err := uc.themeRepo.GetByID(ctx, themeID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return theme, nil
}

func (uc *themeUseCase) ListThemes(ctx context.Context) ([]*entity.Theme, error) {
	themes, err := uc.themeRepo.List(ctx)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return themes, nil
}

func (uc *themeUseCase) SearchThemes(ctx context.Context, description string) ([]*entity.Theme, error) {
	themes, err := uc.themeRepo.SearchByDescription(ctx, description)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return themes, nil
}

func (uc *themeUseCase) UpdateTheme(ctx context.Context, themeID, description string) (*entity.Theme, error) {
	theme := &entity.Theme{ID: themeID, Description: description}
	if err := uc.themeRepo.Update(ctx, theme); err != nil {
		return nil, mapRepoError(err)
	}
	return theme, nil
}

// DeleteTheme also removes every post filed under the theme.
func (uc *themeUseCase) DeleteTheme(ctx context.Context, themeID string) error {
	if err := uc.themeRepo.Delete(ctx, themeID); err != nil {
		return mapRepoError(err)
	}
	uc.logger.Info("Theme %s deleted with all of its posts", themeID)
	return nil
}
