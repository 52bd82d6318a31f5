package usecase

import (
	"context"

	"blogpessoal/internal/entity"
	"blogpessoal/internal/repo/persistent"
	"blogpessoal/pkg/logger"
)

type PostInput struct {
	Title   string
	Text    string
	Image   string
	ThemeID string
}

type PostUseCase interface {
	CreatePost(ctx context.Context, userID string, input PostInput) (*entity.Post, error)
	GetPost(ctx context.Context, postID string) (*entity.Post, error)
	ListPosts(ctx context.Context) ([]*entity.Post, error)
	SearchPosts(ctx context.Context, title string) ([]*entity.Post, error)
	ListUserPosts(ctx context.Context, userID string) ([]*entity.Post, error)
	ListThemePosts(ctx context.Context, themeID string) ([]*entity.Post, error)
	UpdatePost(ctx context.Context, userID, postID string, input PostInput) (*entity.Post, error)
	DeletePost(ctx context.Context, userID, postID string) error
}

type postUseCase struct {
	postRepo persistent.PostRepository
	logger   *logger.Logger
}

func NewPostUseCase(postRepo persistent.PostRepository, logger *logger.Logger) PostUseCase {
	return &postUseCase{
		postRepo: postRepo,
		logger:   logger,
	}
}

// CreatePost files a new post for userID. Its date is set when the post is
// committed.
func (uc *postUseCase) CreatePost(ctx context.Context, userID string, input PostInput) (*entity.Post, error) {
	post := &entity.Post{
		Title:   input.Title,
		Text:    input.Text,
		Image:   input.Image,
		UserID:  userID,
		ThemeID: input.ThemeID,
	}

	if err := uc.postRepo.Create(ctx, post); err != nil {
		return nil, mapRepoError(err)
	}
	return post, nil
}

func (uc *postUseCase) GetPost(ctx context.Context, postID string) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return post, nil
}

func (uc *postUseCase) ListPosts(ctx context.Context) ([]*entity.Post, error) {
	posts, err := uc.postRepo.List(ctx)
	return posts, mapRepoError(err)
}

func (uc *postUseCase) SearchPosts(ctx context.Context, title string) ([]*entity.Post, error) {
	posts, err := uc.postRepo.SearchByTitle(ctx, title)
	return posts, mapRepoError(err)
}

func (uc *postUseCase) ListUserPosts(ctx context.Context, userID string) ([]*entity.Post, error) {
	posts, err := uc.postRepo.ListByUser(ctx, userID)
	return posts, mapRepoError(err)
}

func (uc *postUseCase) ListThemePosts(ctx context.Context, themeID string) ([]*entity.Post, error) {
	posts, err := uc.postRepo.ListByTheme(ctx, themeID)
	return posts, mapRepoError(err)
}

func (uc *postUseCase) UpdatePost(ctx context.Context, userID, postID string, input PostInput) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, mapRepoError(err)
	}

	if post.UserID != userID {
		return nil, ErrForbidden
	}

	post.Title = input.Title
	post.Text = input.Text
	post.Image = input.Image
	post.ThemeID = input.ThemeID

	if err := uc.postRepo.Update(ctx, post); err != nil {
		return nil, mapRepoError(err)
	}
	return post, nil
}

func (uc *postUseCase) DeletePost(ctx context.Context, userID, postID string) error {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return mapRepoError(err)
	}

	if post.UserID != userID {
		return ErrForbidden
	}

	if err := uc.postRepo.Delete(ctx, postID); err != nil {
		return mapRepoError(err)
	}
	uc.logger.Info("Post %s deleted by %s", postID, userID)
	return nil
}
