package access

import (
	"github.com/meguriri/miniob-2025/common"
	"github.com/meguriri/miniob-2025/container/hash"
	"github.com/meguriri/miniob-2025/storage/page"
	"github.com/meguriri/miniob-2025/types"
	"github.com/sasha-s/go-deadlock"
)

type lockTableShard struct {
	mutex                *deadlock.Mutex
	exclusive_lock_table map[page.RID]types.TxnID
}

/**
 * LockManager handles transactions asking for locks on records.
 * Only exclusive locks exist and a request never waits (no-wait 2PL):
 * a conflicting request fails and the requester is expected to abort.
 */
type LockManager struct {
	shards []*lockTableShard
}

func NewLockManager() *LockManager {
	deadlock.Opts.Disable = !common.EnableDebug
	shards := make([]*lockTableShard, common.LockTableShardNum)
	for i := range shards {
		shards[i] = &lockTableShard{new(deadlock.Mutex), make(map[page.RID]types.TxnID)}
	}
	return &LockManager{shards}
}

func (lock_manager *LockManager) shardOf(rid page.RID) *lockTableShard {
	h := hash.GenHashMurMur(rid.Serialize())
	return lock_manager.shards[h%uint32(len(lock_manager.shards))]
}

// LockExclusive grants the lock on rid to txnId.
// it is re-entrant for the owner and returns false when another transaction holds the lock.
func (lock_manager *LockManager) LockExclusive(txnId types.TxnID, rid page.RID) bool {
	shard := lock_manager.shardOf(rid)
	shard.mutex.Lock()
	defer shard.mutex.Unlock()

	if owner, ok := shard.exclusive_lock_table[rid]; ok {
		return owner == txnId
	}
	shard.exclusive_lock_table[rid] = txnId
	return true
}

// IsLocked returns the owner of the lock on rid
func (lock_manager *LockManager) IsLocked(rid page.RID) (types.TxnID, bool) {
	shard := lock_manager.shardOf(rid)
	shard.mutex.Lock()
	defer shard.mutex.Unlock()

	owner, ok := shard.exclusive_lock_table[rid]
	return owner, ok
}

/**
* Release the locks held by the transaction.
* rids locked by another transaction are left untouched.
 */
func (lock_manager *LockManager) Unlock(txnId types.TxnID, rid_list []page.RID) {
	for _, locked_rid := range rid_list {
		shard := lock_manager.shardOf(locked_rid)
		shard.mutex.Lock()
		if owner, ok := shard.exclusive_lock_table[locked_rid]; ok && owner == txnId {
			delete(shard.exclusive_lock_table, locked_rid)
		}
		shard.mutex.Unlock()
	}
}
