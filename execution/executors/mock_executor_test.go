package executors

import (
	"github.com/meguriri/miniob-2025/catalog"
	"github.com/meguriri/miniob-2025/storage/access"
	"github.com/meguriri/miniob-2025/storage/tuple"
)

// mockExecutor emits a fixed list of tuples and counts the calls it receives
type mockExecutor struct {
	tuples     []tuple.Tuple
	meta       *catalog.TableMeta
	openErr    error
	nextErrAt  int // 1-based Next call which fails. 0 never fails
	nextErr    error
	pos        int
	nextCalls  int
	openCalls  int
	closeCalls int
}

func newMockExecutor(meta *catalog.TableMeta, tuples ...tuple.Tuple) *mockExecutor {
	return &mockExecutor{tuples: tuples, meta: meta}
}

func (e *mockExecutor) Open(txn access.Transaction) error {
	e.openCalls++
	e.pos = -1
	return e.openErr
}

func (e *mockExecutor) Next() (Done, error) {
	e.nextCalls++
	if e.nextErrAt == e.nextCalls {
		return true, e.nextErr
	}
	e.pos++
	return Done(e.pos >= len(e.tuples)), nil
}

func (e *mockExecutor) CurrentTuple() tuple.Tuple {
	if e.pos < 0 || e.pos >= len(e.tuples) {
		return nil
	}
	return e.tuples[e.pos]
}

func (e *mockExecutor) Close() error {
	e.closeCalls++
	return nil
}

func (e *mockExecutor) GetTableMetaData() *catalog.TableMeta {
	return e.meta
}
