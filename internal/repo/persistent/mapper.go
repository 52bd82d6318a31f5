package persistent

import (
	"blogpessoal/internal/entity"
	"blogpessoal/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	user := &entity.User{
		ID:       m.ID,
		Name:     m.Name,
		Username: m.Username,
		Password: m.Password,
		Photo:    m.Photo,
	}
	for i := range m.Posts {
		user.Posts = append(user.Posts, *toPostEntity(&m.Posts[i], false))
	}
	return user
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:       e.ID,
		Name:     e.Name,
		Username: e.Username,
		Password: e.Password,
		Photo:    e.Photo,
	}
}

func ToThemeEntity(m *model.ThemeModel) *entity.Theme {
	if m == nil {
		return nil
	}

	theme := &entity.Theme{
		ID:          m.ID,
		Description: m.Description,
	}
	for i := range m.Posts {
		theme.Posts = append(theme.Posts, *toPostEntity(&m.Posts[i], false))
	}
	return theme
}

func ToThemeModel(e *entity.Theme) *model.ThemeModel {
	if e == nil {
		return nil
	}

	return &model.ThemeModel{
		ID:          e.ID,
		Description: e.Description,
	}
}

func ToPostEntity(m *model.PostModel) *entity.Post {
	return toPostEntity(m, true)
}

// toPostEntity maps a post; parents are only attached when withParents is
// set, which keeps user and theme listings free of back references.
func toPostEntity(m *model.PostModel, withParents bool) *entity.Post {
	if m == nil {
		return nil
	}

	post := &entity.Post{
		ID:      m.ID,
		Title:   m.Title,
		Text:    m.Text,
		Image:   m.Image,
		Date:    m.Date,
		UserID:  m.UserID,
		ThemeID: m.ThemeID,
	}
	if withParents {
		if m.User != nil {
			post.User = &entity.User{ID: m.User.ID, Name: m.User.Name, Username: m.User.Username, Photo: m.User.Photo}
		}
		if m.Theme != nil {
			post.Theme = &entity.Theme{ID: m.Theme.ID, Description: m.Theme.Description}
		}
	}
	return post
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:      e.ID,
		Title:   e.Title,
		Text:    e.Text,
		Image:   e.Image,
		UserID:  e.UserID,
		ThemeID: e.ThemeID,
		Audit:   model.Audit{Date: e.Date},
	}
}

func toPostEntities(models []model.PostModel) []*entity.Post {
	posts := make([]*entity.Post, len(models))
	for i := range models {
		posts[i] = ToPostEntity(&models[i])
	}
	return posts
}
