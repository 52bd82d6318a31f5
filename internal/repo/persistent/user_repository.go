package persistent

import (
	"context"
	"errors"

	"blogpessoal/internal/entity"
	"blogpessoal/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := ToUserModel(user)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureUsernameFree(tx, userModel.Username, ""); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(userModel).Error
	})
	if err != nil {
		return translate(err)
	}

	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}

	var userModel model.UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&userModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	var userModels []model.UserModel
	if err := r.db.WithContext(ctx).Preload("Posts", orderPostsByDate).Order("name ASC").Find(&userModels).Error; err != nil {
		return nil, translate(err)
	}

	users := make([]*entity.User, len(userModels))
	for i := range userModels {
		users[i] = ToUserEntity(&userModels[i])
	}
	return users, nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	userModel := ToUserModel(user)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := exists(tx, &model.UserModel{}, userModel.ID); err != nil {
			return err
		}
		if err := ensureUsernameFree(tx, userModel.Username, userModel.ID); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(userModel).Error
	})
	if err != nil {
		return translate(err)
	}

	*user = *ToUserEntity(userModel)
	return nil
}

// Delete removes the user and every post they own in one transaction.
func (r *userRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return ErrNotFound
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(map[string]interface{}{"UserId": id}).Delete(&model.PostModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.UserModel{})
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

func ensureUsernameFree(tx *gorm.DB, username, ownerID string) error {
	var existing model.UserModel
	err := tx.Select("id").Where("username = ?", username).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID != ownerID:
		return ErrDuplicate
	default:
		return nil
	}
}

func exists(tx *gorm.DB, value interface{}, id string) error {
	if !validID(id) {
		return ErrNotFound
	}

	var count int64
	if err := tx.Model(value).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

func orderPostsByDate(db *gorm.DB) *gorm.DB {
	return db.Order("date DESC")
}
