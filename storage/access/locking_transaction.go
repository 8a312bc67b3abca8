package access

import (
	"bytes"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/golang-collections/collections/stack"
	"github.com/meguriri/miniob-2025/catalog"
	"github.com/meguriri/miniob-2025/common"
	"github.com/meguriri/miniob-2025/storage/page"
	"github.com/meguriri/miniob-2025/storage/record"
	"github.com/meguriri/miniob-2025/types"
)

/**
 * LockingTransaction takes an exclusive lock on every record it writes
 * and keeps an undo log which TransactionManager.Abort unwinds.
 */
type LockingTransaction struct {
	state TransactionState
	txnId types.TxnID
	// undo log. holds *WriteRecord
	writeSet *stack.Stack
	// LockManager: the set of exclusive-locked records held by this transaction
	exclusiveLockSet mapset.Set[page.RID]
	lockManager      *LockManager
	dbgInfo          string
}

func NewLockingTransaction(txnId types.TxnID, lockManager *LockManager) *LockingTransaction {
	return &LockingTransaction{
		GROWING,
		txnId,
		stack.New(),
		mapset.NewSet[page.RID](),
		lockManager,
		"",
	}
}

/** @return the id of this transaction */
func (txn *LockingTransaction) GetTransactionId() types.TxnID { return txn.txnId }

/** @return the current state of the transaction */
func (txn *LockingTransaction) GetState() TransactionState { return txn.state }

func (txn *LockingTransaction) SetState(state TransactionState) {
	if common.EnableDebug {
		if state == ABORTED {
			common.ShPrintf(common.RDB_OP_FUNC_CALL, "LockingTransaction::SetState called. txnId:%d dbgInfo:%s state:ABORTED\n", txn.txnId, txn.dbgInfo)
		}
	}
	txn.state = state
}

func (txn *LockingTransaction) GetDebugInfo() string { return txn.dbgInfo }

func (txn *LockingTransaction) SetDebugInfo(dbgInfo string) { txn.dbgInfo = dbgInfo }

/** @return true if rid is exclusively locked by this transaction */
func (txn *LockingTransaction) IsExclusiveLocked(rid page.RID) bool {
	return txn.exclusiveLockSet.Contains(rid)
}

func (txn *LockingTransaction) GetExclusiveLockSet() []page.RID {
	return txn.exclusiveLockSet.ToSlice()
}

// WriteSetSize returns the number of writes which are not yet undone
func (txn *LockingTransaction) WriteSetSize() int {
	return txn.writeSet.Len()
}

func (txn *LockingTransaction) popWriteRecord() *WriteRecord {
	if txn.writeSet.Len() == 0 {
		return nil
	}
	return txn.writeSet.Pop().(*WriteRecord)
}

func (txn *LockingTransaction) checkActive() error {
	if txn.state != GROWING {
		return fmt.Errorf("txn %d state %s: %w", txn.txnId, txn.state, ErrTxnNotActive)
	}
	return nil
}

// lock reports whether the lock on rid was taken by this call
func (txn *LockingTransaction) lock(rid page.RID) (bool, error) {
	if txn.exclusiveLockSet.Contains(rid) {
		return false, nil
	}
	if !txn.lockManager.LockExclusive(txn.txnId, rid) {
		txn.SetState(ABORTED)
		return false, fmt.Errorf("txn %d rid %v: %w", txn.txnId, rid, ErrLockConflict)
	}
	txn.exclusiveLockSet.Add(rid)
	return true, nil
}

// lockForWrite locks the slot of rec, which was read without a lock.
// when another transaction changed the slot in between, rec is stale and
// writing it (or restoring it on abort) would lose that change, so txn aborts.
func (txn *LockingTransaction) lockForWrite(table *catalog.Table, rec *record.Record) error {
	acquired, err := txn.lock(rec.RID())
	if err != nil || !acquired {
		return err
	}
	stored, err := table.GetRecord(rec.RID())
	if err != nil || !bytes.Equal(stored.Data(), rec.Data()) {
		txn.SetState(ABORTED)
		return fmt.Errorf("txn %d rid %v changed since read: %w", txn.txnId, rec.RID(), ErrLockConflict)
	}
	return nil
}

func (txn *LockingTransaction) InsertRecord(table *catalog.Table, rec *record.Record) error {
	if err := txn.checkActive(); err != nil {
		return err
	}
	if err := table.InsertRecord(rec); err != nil {
		return err
	}
	// a transaction which deleted the previous record of this slot may still hold its lock
	if _, err := txn.lock(rec.RID()); err != nil {
		if delErr := table.DeleteRecord(rec); delErr != nil {
			common.ShPrintf(common.ERROR, "failed to remove record inserted into a locked slot. rid:%v err:%v\n", rec.RID(), delErr)
		}
		return err
	}
	txn.writeSet.Push(NewWriteRecord(INSERT, table, nil, rec))
	return nil
}

func (txn *LockingTransaction) DeleteRecord(table *catalog.Table, rec *record.Record) error {
	if err := txn.checkActive(); err != nil {
		return err
	}
	if err := txn.lockForWrite(table, rec); err != nil {
		return err
	}
	if err := table.DeleteRecord(rec); err != nil {
		return err
	}
	txn.writeSet.Push(NewWriteRecord(DELETE, table, rec, nil))
	return nil
}

func (txn *LockingTransaction) UpdateRecord(table *catalog.Table, old *record.Record, newRec *record.Record) error {
	if err := txn.checkActive(); err != nil {
		return err
	}
	if err := txn.lockForWrite(table, old); err != nil {
		return err
	}
	if err := table.UpdateRecord(old, newRec); err != nil {
		return err
	}
	txn.writeSet.Push(NewWriteRecord(UPDATE, table, old, newRec))
	return nil
}
