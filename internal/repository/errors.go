package repository

import (
	"errors"
	"interview_readiness_backend/internal/util"

	"gorm.io/gorm"
)

// translateError 将 gorm 错误转换为业务错误类型
func translateError(err error, entity string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return util.NewNotFoundError(entity + " not found")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return util.NewConflictError(entity + " already exists")
	}
	return err
}
