package types

import "github.com/meguriri/miniob-2025/errors"

const (
	ErrInvalidDateFormat = errors.Error("invalid date format")
	ErrInvalidArgument   = errors.Error("invalid argument")
	ErrUnimplemented     = errors.Error("unimplemented")
)
