// this code is from https://github.com/pzhzqt/goostub
// there is license and copyright notice in licenses/goostub dir

package common

var EnableDebug bool = false

const (
	// size of a data page in byte
	PageSize = 4096
	// number of frames of the buffer pool
	BufferPoolMaxFrameNum = 64
	// number of shards of the record lock table
	LockTableShardNum = 16
	// max number of statements the request manager runs at once
	MaxTxnThreadNum = 8
)

// LogLevelSetting selects which LogLevel flags reach the log output
var LogLevelSetting = INFO | WARN | ERROR | FATAL
