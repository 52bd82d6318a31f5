package persistent

import (
	"context"
	"errors"

	"blogpessoal/internal/entity"
	"blogpessoal/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	List(ctx context.Context) ([]*entity.Post, error)
	SearchByTitle(ctx context.Context, title string) ([]*entity.Post, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Post, error)
	ListByTheme(ctx context.Context, themeID string) ([]*entity.Post, error)
	Update(ctx context.Context, post *entity.Post) error
	Delete(ctx context.Context, id string) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create inserts the post after checking its user and theme inside the same
// transaction. The audit date is assigned by the database layer.
func (r *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postModel := ToPostModel(post)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureReferences(tx, postModel); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(postModel).Error; err != nil {
			return err
		}
		return withParents(tx).Where("id = ?", postModel.ID).First(postModel).Error
	})
	if err != nil {
		return translate(err)
	}

	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}

	var postModel model.PostModel
	if err := withParents(r.db.WithContext(ctx)).Where("id = ?", id).First(&postModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) List(ctx context.Context) ([]*entity.Post, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *postRepository) SearchByTitle(ctx context.Context, title string) ([]*entity.Post, error) {
	return r.find(r.db.WithContext(ctx).Where("LOWER(title) LIKE ? ESCAPE '\\'", containsPattern(title)))
}

func (r *postRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Post, error) {
	if !validID(userID) {
		return []*entity.Post{}, nil
	}
	return r.find(r.db.WithContext(ctx).Where(map[string]interface{}{"UserId": userID}))
}

func (r *postRepository) ListByTheme(ctx context.Context, themeID string) ([]*entity.Post, error) {
	if !validID(themeID) {
		return []*entity.Post{}, nil
	}
	return r.find(r.db.WithContext(ctx).Where(map[string]interface{}{"TemaId": themeID}))
}

// Update overwrites the post. Like Create it fails with
// ErrReferentialIntegrity when the new user or theme is missing.
func (r *postRepository) Update(ctx context.Context, post *entity.Post) error {
	postModel := ToPostModel(post)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := exists(tx, &model.PostModel{}, postModel.ID); err != nil {
			return err
		}
		if err := ensureReferences(tx, postModel); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Save(postModel).Error; err != nil {
			return err
		}
		return withParents(tx).Where("id = ?", postModel.ID).First(postModel).Error
	})
	if err != nil {
		return translate(err)
	}

	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return ErrNotFound
	}

	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PostModel{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postRepository) find(query *gorm.DB) ([]*entity.Post, error) {
	var postModels []model.PostModel
	if err := withParents(query).Order("date DESC").Find(&postModels).Error; err != nil {
		return nil, translate(err)
	}
	return toPostEntities(postModels), nil
}

func withParents(db *gorm.DB) *gorm.DB {
	return db.Preload("User").Preload("Theme")
}

func ensureReferences(tx *gorm.DB, post *model.PostModel) error {
	for _, ref := range []struct {
		value interface{}
		id    string
	}{
		{&model.UserModel{}, post.UserID},
		{&model.ThemeModel{}, post.ThemeID},
	} {
		if ref.id == "" {
			return ErrReferentialIntegrity
		}
		if err := exists(tx, ref.value, ref.id); err != nil {
			if errors.Is(err, ErrNotFound) {
				return ErrReferentialIntegrity
			}
			return err
		}
	}
	return nil
}
