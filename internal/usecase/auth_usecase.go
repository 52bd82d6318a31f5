package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"blogpessoal/internal/entity"
	"blogpessoal/internal/repo/persistent"
	"blogpessoal/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type TokenIssuer interface {
	GenerateToken(userID, username string) (string, error)
}

type ImageStorage interface {
	UploadFile(key string, file io.Reader, contentType string) (string, error)
}

type UserInput struct {
	Name     string
	Username string
	Password string
	Photo    string
}

type AuthUseCase interface {
	Register(ctx context.Context, input UserInput) (*entity.User, string, error)
	Login(ctx context.Context, username, password string) (*entity.User, string, error)
	GetUser(ctx context.Context, userID string) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	UpdateUser(ctx context.Context, actorID, userID string, input UserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, actorID, userID string) error
	UploadPhoto(ctx context.Context, userID string, file io.Reader, filename, contentType string) (*entity.User, error)
}

type authUseCase struct {
	userRepo persistent.UserRepository
	tokens   TokenIssuer
	images   ImageStorage
	logger   *logger.Logger
	hashCost int

	comparePassword func(hash, password []byte) error
	decoyOnce       sync.Once
	decoyHash       []byte
}

// NewAuthUseCase wires user management and token issuance. images may be nil,
// in which case photo uploads fail with ErrStorageUnavailable.
func NewAuthUseCase(
	userRepo persistent.UserRepository,
	tokens TokenIssuer,
	images ImageStorage,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo: userRepo,
		tokens:   tokens,
		images:   images,
		logger:   logger,
		hashCost: bcrypt.DefaultCost,

		comparePassword: bcrypt.CompareHashAndPassword,
	}
}

func (uc *authUseCase) Register(ctx context.Context, input UserInput) (*entity.User, string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), uc.hashCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process registration: %w", err)
	}

	user := &entity.User{
		Name:     input.Name,
		Username: input.Username,
		Password: string(hashedPassword),
		Photo:    input.Photo,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, persistent.ErrDuplicate) {
			return nil, "", ErrUsernameTaken
		}
		uc.logger.Error("Failed to create user: %v", err)
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := uc.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	user.Password = ""
	return user, token, nil
}

// missingUserHash is a hash at the configured cost that no password matches.
func (uc *authUseCase) missingUserHash() []byte {
	uc.decoyOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), uc.hashCost)
		if err != nil {
			uc.logger.Error("Failed to build decoy hash: %v", err)
			return
		}
		uc.decoyHash = hash
	})
	return uc.decoyHash
}

// Login issues a token when password matches the stored hash. Unknown users
// and wrong passwords are indistinguishable to the caller.
func (uc *authUseCase) Login(ctx context.Context, username, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			// Spend the same bcrypt work as a real check so response time
			// does not reveal which usernames exist.
			_ = uc.comparePassword(uc.missingUserHash(), []byte(password))
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := uc.comparePassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := uc.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	user.Password = ""
	return user, nil
}

func (uc *authUseCase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, mapRepoError(err)
	}
	for _, user := range users {
		user.Password = ""
	}
	return users, nil
}

// UpdateUser replaces the caller's own profile. An empty password keeps the
// current one.
func (uc *authUseCase) UpdateUser(ctx context.Context, actorID, userID string, input UserInput) (*entity.User, error) {
	if actorID != userID {
		return nil, ErrForbidden
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, mapRepoError(err)
	}

	user.Name = input.Name
	user.Username = input.Username
	user.Photo = input.Photo
	if input.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), uc.hashCost)
		if err != nil {
			uc.logger.Error("Failed to hash password: %v", err)
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hashedPassword)
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, mapRepoError(err)
	}

	user.Password = ""
	return user, nil
}

func (uc *authUseCase) DeleteUser(ctx context.Context, actorID, userID string) error {
	if actorID != userID {
		return ErrForbidden
	}
	if err := uc.userRepo.Delete(ctx, userID); err != nil {
		return mapRepoError(err)
	}
	uc.logger.Info("User %s deleted with all of their posts", userID)
	return nil
}

func (uc *authUseCase) UploadPhoto(ctx context.Context, userID string, file io.Reader, filename, contentType string) (*entity.User, error) {
	if uc.images == nil {
		return nil, ErrStorageUnavailable
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, mapRepoError(err)
	}

	key := fmt.Sprintf("users/%s/%s%s", userID, uuid.New().String(), strings.ToLower(filepath.Ext(filename)))
	photoURL, err := uc.images.UploadFile(key, file, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload photo: %v", err)
		return nil, fmt.Errorf("failed to upload photo: %w", err)
	}

	user.Photo = photoURL
	if err := uc.userRepo.Update(ctx, user); err != nil {
		uc.logger.Error("Failed to update user: %v", err)
		return nil, mapRepoError(err)
	}

	user.Password = ""
	return user, nil
}
