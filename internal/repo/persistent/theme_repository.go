package persistent

import (
	"context"
	"strings"

	"blogpessoal/internal/entity"
	"blogpessoal/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ThemeRepository interface {
	Create(ctx context.Context, theme *entity.Theme) error
	GetByID(ctx context.Context, id string) (*entity.Theme, error)
	List(ctx context.Context) ([]*entity.Theme, error)
	SearchByDescription(ctx context.Context, description string) ([]*entity.Theme, error)
	Update(ctx context.Context, theme *entity.Theme) error
	Delete(ctx context.Context, id string) error
}

type themeRepository struct {
	db *gorm.DB
}

func NewThemeRepository(db *gorm.DB) ThemeRepository {
	return &themeRepository{db: db}
}

func (r *themeRepository) Create(ctx context.Context, theme *entity.Theme) error {
	themeModel := ToThemeModel(theme)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(themeModel).Error; err != nil {
		return translate(err)
	}
	*theme = *ToThemeEntity(themeModel)
	return nil
}

func (r *themeRepository) GetByID(ctx context.Context, id string) (*entity.Theme, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}

	var themeModel model.ThemeModel
	if err := r.db.WithContext(ctx).Preload("Posts", orderPostsByDate).Where("id = ?", id).First(&themeModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToThemeEntity(&themeModel), nil
}

func (r *themeRepository) List(ctx context.Context) ([]*entity.Theme, error) {
	var themeModels []model.ThemeModel
	if err := r.db.WithContext(ctx).Preload("Posts", orderPostsByDate).Order("description ASC").Find(&themeModels).Error; err != nil {
		return nil, translate(err)
	}
	return toThemeEntities(themeModels), nil
}

func (r *themeRepository) SearchByDescription(ctx context.Context, description string) ([]*entity.Theme, error) {
	var themeModels []model.ThemeModel
	err := r.db.WithContext(ctx).
		Preload("Posts", orderPostsByDate).
		Where("LOWER(description) LIKE ? ESCAPE '\\'", containsPattern(description)).
		Order("description ASC").
		Find(&themeModels).Error
	if err != nil {
		return nil, translate(err)
	}
	return toThemeEntities(themeModels), nil
}

func (r *themeRepository) Update(ctx context.Context, theme *entity.Theme) error {
	themeModel := ToThemeModel(theme)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := exists(tx, &model.ThemeModel{}, themeModel.ID); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(themeModel).Error
	})
	if err != nil {
		return translate(err)
	}

	*theme = *ToThemeEntity(themeModel)
	return nil
}

// Delete removes the theme and every post filed under it in one transaction.
func (r *themeRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return ErrNotFound
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(map[string]interface{}{"TemaId": id}).Delete(&model.PostModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.ThemeModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	return translate(err)
}

func toThemeEntities(models []model.ThemeModel) []*entity.Theme {
	themes := make([]*entity.Theme, len(models))
	for i := range models {
		themes[i] = ToThemeEntity(&models[i])
	}
	return themes
}

// containsPattern builds a case-insensitive LIKE pattern with the LIKE
// wildcards in term matched literally.
func containsPattern(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(strings.ToLower(term)) + "%"
}
