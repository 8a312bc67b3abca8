package access

import (
	"fmt"
	"sync"

	"github.com/meguriri/miniob-2025/common"
	"github.com/meguriri/miniob-2025/types"
)

/**
 * TransactionManager keeps track of all the transactions running in the system.
 */
type TransactionManager struct {
	next_txn_id  types.TxnID
	lock_manager *LockManager
	txn_map      map[types.TxnID]Transaction
	mutex        *sync.Mutex
}

func NewTransactionManager(lock_manager *LockManager) *TransactionManager {
	return &TransactionManager{0, lock_manager, make(map[types.TxnID]Transaction), new(sync.Mutex)}
}

func (transaction_manager *TransactionManager) GetLockManager() *LockManager {
	return transaction_manager.lock_manager
}

func (transaction_manager *TransactionManager) Begin(kind TxnKind) Transaction {
	transaction_manager.mutex.Lock()
	defer transaction_manager.mutex.Unlock()

	transaction_manager.next_txn_id += 1
	var txn_ret Transaction
	switch kind {
	case LOCKING:
		txn_ret = NewLockingTransaction(transaction_manager.next_txn_id, transaction_manager.lock_manager)
	default:
		txn_ret = NewVacuousTransaction(transaction_manager.next_txn_id)
	}
	transaction_manager.txn_map[txn_ret.GetTransactionId()] = txn_ret
	return txn_ret
}

// GetTransaction returns a running transaction or nil
func (transaction_manager *TransactionManager) GetTransaction(txnId types.TxnID) Transaction {
	transaction_manager.mutex.Lock()
	defer transaction_manager.mutex.Unlock()
	return transaction_manager.txn_map[txnId]
}

func (transaction_manager *TransactionManager) forget(txn Transaction) {
	transaction_manager.mutex.Lock()
	delete(transaction_manager.txn_map, txn.GetTransactionId())
	transaction_manager.mutex.Unlock()
}

func (transaction_manager *TransactionManager) Commit(txn Transaction) error {
	switch t := txn.(type) {
	case *LockingTransaction:
		if t.GetState() == ABORTED || t.GetState() == COMMITTED {
			return fmt.Errorf("commit txn %d state %s: %w", t.GetTransactionId(), t.GetState(), ErrTxnNotActive)
		}
		t.SetState(COMMITTED)
		for t.popWriteRecord() != nil {
		}
		transaction_manager.releaseLocks(t)
	case *VacuousTransaction:
		t.SetState(COMMITTED)
	}
	transaction_manager.forget(txn)
	return nil
}

// Abort undoes the writes of txn in reverse order and releases its locks.
// A VacuousTransaction has no undo log, so its writes stay applied.
func (transaction_manager *TransactionManager) Abort(txn Transaction) error {
	var retErr error
	switch t := txn.(type) {
	case *LockingTransaction:
		if t.GetState() == COMMITTED {
			return fmt.Errorf("abort txn %d state %s: %w", t.GetTransactionId(), t.GetState(), ErrTxnNotActive)
		}
		t.SetState(ABORTED)
		// Rollback before releasing the locks.
		for item := t.popWriteRecord(); item != nil; item = t.popWriteRecord() {
			if err := item.undo(); err != nil {
				common.ShPrintf(common.ERROR, "failed to roll back write. txn:%d table:%s err:%v\n", t.GetTransactionId(), item.Table().Name(), err)
				if retErr == nil {
					retErr = err
				}
			}
		}
		transaction_manager.releaseLocks(t)
	case *VacuousTransaction:
		t.SetState(ABORTED)
	}
	transaction_manager.forget(txn)
	return retErr
}

func (transaction_manager *TransactionManager) releaseLocks(txn *LockingTransaction) {
	lock_set := txn.GetExclusiveLockSet()
	transaction_manager.lock_manager.Unlock(txn.GetTransactionId(), lock_set)
	txn.exclusiveLockSet.Clear()
}
