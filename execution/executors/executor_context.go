package executors

import (
	"github.com/meguriri/miniob-2025/catalog"
	"github.com/meguriri/miniob-2025/storage/access"
)

// ExecutorContext stores all the context necessary to run an executor
type ExecutorContext struct {
	catalog *catalog.Catalog
	txn     access.Transaction
}

func NewExecutorContext(catalog *catalog.Catalog, txn access.Transaction) *ExecutorContext {
	return &ExecutorContext{catalog, txn}
}

func (e *ExecutorContext) GetCatalog() *catalog.Catalog {
	return e.catalog
}

func (e *ExecutorContext) GetTransaction() access.Transaction {
	return e.txn
}

func (e *ExecutorContext) SetTransaction(txn access.Transaction) {
	e.txn = txn
}
