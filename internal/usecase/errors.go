package usecase

import (
	"errors"

	"blogpessoal/internal/repo/persistent"
)

var (
	ErrNotFound             = errors.New("resource not found")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrUsernameTaken        = errors.New("username already taken")
	ErrForbidden            = errors.New("operation not allowed for this user")
	ErrReferentialIntegrity = errors.New("user or theme does not exist")
	ErrStorageUnavailable   = errors.New("image storage is not configured")
)

func mapRepoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, persistent.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, persistent.ErrDuplicate):
		return ErrUsernameTaken
	case errors.Is(err, persistent.ErrReferentialIntegrity):
		return ErrReferentialIntegrity
	default:
		return err
	}
}
