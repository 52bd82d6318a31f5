package persistent

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("record not found")
	// ErrReferentialIntegrity is returned when a post points at a user or
	// theme that does not exist. The surrounding transaction is rolled back.
	ErrReferentialIntegrity = errors.New("referenced user or theme does not exist")
	ErrDuplicate            = errors.New("record already exists")
)

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrReferentialIntegrity
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}

// validID reports whether id can name a stored row. Keys are uuids, and
// PostgreSQL rejects any other text in a uuid column with an error.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
