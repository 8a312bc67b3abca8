package catalog

import "github.com/meguriri/miniob-2025/errors"

const (
	ErrSchemaTableExist     = errors.Error("table already exists")
	ErrSchemaTableNotExist  = errors.Error("table does not exist")
	ErrSchemaFieldNotExist  = errors.Error("field does not exist")
	ErrSchemaFieldDuplicate = errors.Error("duplicate field name")
	ErrSchemaFieldInvalid   = errors.Error("invalid field definition")
	ErrRIDMismatch          = errors.Error("old and new record have different rids")
)
