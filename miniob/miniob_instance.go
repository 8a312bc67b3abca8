package miniob

import (
	"github.com/meguriri/miniob-2025/common"
	"github.com/meguriri/miniob-2025/storage/access"
	"github.com/meguriri/miniob-2025/storage/buffer"
	"github.com/meguriri/miniob-2025/storage/disk"
)

type MiniobInstance struct {
	disk_manager        disk.DiskManager
	bpm                 *buffer.BufferPoolManager
	lock_manager        *access.LockManager
	transaction_manager *access.TransactionManager
}

// pages live in memory only, dbName just labels the storage
// bpoolSize: usable buffer size in frame(=page) num
func NewMiniobInstance(dbName string, bpoolSize int) *MiniobInstance {
	disk_manager := disk.NewVirtualDiskManagerImpl(dbName + ".db")
	bpm := buffer.NewBufferPoolManager(uint32(bpoolSize), disk_manager)
	lock_manager := access.NewLockManager()
	transaction_manager := access.NewTransactionManager(lock_manager)

	return &MiniobInstance{disk_manager, bpm, lock_manager, transaction_manager}
}

func (mi *MiniobInstance) GetDiskManager() disk.DiskManager {
	return mi.disk_manager
}

func (mi *MiniobInstance) GetBufferPoolManager() *buffer.BufferPoolManager {
	return mi.bpm
}

func (mi *MiniobInstance) GetLockManager() *access.LockManager {
	return mi.lock_manager
}

func (mi *MiniobInstance) GetTransactionManager() *access.TransactionManager {
	return mi.transaction_manager
}

// Shutdown flushes dirty pages and shuts the disk manager down
func (mi *MiniobInstance) Shutdown() {
	if err := mi.bpm.FlushAllPages(); err != nil {
		common.ShPrintf(common.ERROR, "flush on shutdown failed. err:%v\n", err)
	}
	mi.disk_manager.ShutDown()
}
