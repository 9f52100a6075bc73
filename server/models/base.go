package models

import (
	"strings"
	"time"

	sqlcipher "github.com/mutecomm/go-sqlcipher/v4"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key")
)

type BaseModel struct {
	ID        uint      `json:"id,omitempty" gorm:"primarykey"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// ---------------------------------------------------------------------------------//
// Helper functions
// --------------------------------------------------------------------------------//

// translateError maps driver & gorm errors onto ErrNotFound & ErrDuplicateKey
func translateError(err error, msg string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Wrap(ErrNotFound, msg)
	}

	var sqliteErr sqlcipher.Error
	if errors.As(err, &sqliteErr) {
		if sqliteErr.ExtendedCode == sqlcipher.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlcipher.ErrConstraintPrimaryKey {
			return errors.Wrap(ErrDuplicateKey, msg)
		}
	}

	return errors.Wrap(err, msg)
}

func joinList(values []string, sep string) string {
	return strings.Join(values, sep)
}

// splitList is the inverse of joinList. An empty column is an empty list.
func splitList(value string, sep string) []string {
	if value == "" {
		return []string{}
	}
	return strings.Split(value, sep)
}
