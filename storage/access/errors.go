package access

import "github.com/meguriri/miniob-2025/errors"

const (
	ErrLockConflict = errors.Error("record is locked by another transaction")
	ErrTxnNotActive = errors.Error("transaction is not active")
)
