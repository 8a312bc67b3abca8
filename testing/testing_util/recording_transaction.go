package testing_util

import (
	"github.com/meguriri/miniob-2025/catalog"
	"github.com/meguriri/miniob-2025/storage/access"
	"github.com/meguriri/miniob-2025/storage/record"
	"github.com/meguriri/miniob-2025/types"
	pair "github.com/notEpsilon/go-pair"
)

// RecordingTransaction passes writes to an inner transaction and keeps
// a copy of every update request. It can be told to fail the n-th update.
type RecordingTransaction struct {
	inner access.Transaction
	// FailUpdateAt makes the n-th (1-based) UpdateRecord call return FailErr. 0 never fails.
	FailUpdateAt int
	FailErr      error
	// BeforeUpdate is called at the start of every UpdateRecord call
	BeforeUpdate func()
	updateCalls  int
	updates      []pair.Pair[*record.Record, *record.Record]
	inserts      int
	deletes      int
}

func NewRecordingTransaction(inner access.Transaction) *RecordingTransaction {
	return &RecordingTransaction{inner: inner}
}

func (txn *RecordingTransaction) GetTransactionId() types.TxnID {
	return txn.inner.GetTransactionId()
}

func (txn *RecordingTransaction) GetState() access.TransactionState {
	return txn.inner.GetState()
}

func (txn *RecordingTransaction) InsertRecord(table *catalog.Table, rec *record.Record) error {
	txn.inserts++
	return txn.inner.InsertRecord(table, rec)
}

func (txn *RecordingTransaction) DeleteRecord(table *catalog.Table, rec *record.Record) error {
	txn.deletes++
	return txn.inner.DeleteRecord(table, rec)
}

func (txn *RecordingTransaction) UpdateRecord(table *catalog.Table, old *record.Record, newRec *record.Record) error {
	if txn.BeforeUpdate != nil {
		txn.BeforeUpdate()
	}
	txn.updateCalls++
	if txn.FailUpdateAt == txn.updateCalls {
		return txn.FailErr
	}
	txn.updates = append(txn.updates, pair.Pair[*record.Record, *record.Record]{First: old.DeepCopy(), Second: newRec.DeepCopy()})
	return txn.inner.UpdateRecord(table, old, newRec)
}

// UpdateCalls counts every UpdateRecord call including failed ones
func (txn *RecordingTransaction) UpdateCalls() int {
	return txn.updateCalls
}

// Updates returns the (old, new) pairs passed on to the inner transaction
func (txn *RecordingTransaction) Updates() []pair.Pair[*record.Record, *record.Record] {
	return txn.updates
}

func (txn *RecordingTransaction) InsertCalls() int {
	return txn.inserts
}

func (txn *RecordingTransaction) DeleteCalls() int {
	return txn.deletes
}
