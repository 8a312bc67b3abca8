package executors

import (
	"github.com/meguriri/miniob-2025/catalog"
	"github.com/meguriri/miniob-2025/errors"
	"github.com/meguriri/miniob-2025/storage/access"
	"github.com/meguriri/miniob-2025/storage/tuple"
)

const (
	ErrNotRowTuple     = errors.Error("tuple is not backed by a record")
	ErrFieldNotExist   = errors.Error("field does not exist")
	ErrTableNotExist   = errors.Error("table does not exist")
	ErrUnsupportedPlan = errors.Error("unsupported plan")
)

// Done is true once an executor has no more tuples
type Done bool

// Executor is a node of the physical operator tree
//
// Open prepares the executor and its children for the transaction.
// It must be called before Next is called!
//
// Next advances to the next tuple, which CurrentTuple then returns.
// Close releases what Open acquired. it may be called more than once.
type Executor interface {
	Open(txn access.Transaction) error
	Next() (Done, error)
	CurrentTuple() tuple.Tuple
	Close() error
	GetTableMetaData() *catalog.TableMeta
}
