package executors

import (
	"fmt"

	"github.com/meguriri/miniob-2025/common"
	"github.com/meguriri/miniob-2025/storage/access"
	"github.com/meguriri/miniob-2025/storage/record"
	"github.com/meguriri/miniob-2025/storage/tuple"
)

// bufferRecords drains child and returns a copy of the record behind every tuple.
// the child is closed before returning, so callers may write to the table afterwards.
func bufferRecords(child Executor, txn access.Transaction) ([]*record.Record, error) {
	if err := child.Open(txn); err != nil {
		common.ShPrintf(common.WARN, "failed to open child operator: %v\n", err)
		return nil, err
	}

	records := make([]*record.Record, 0)
	for {
		done, err := child.Next()
		if err != nil {
			common.ShPrintf(common.WARN, "failed to get next tuple from child operator: %v\n", err)
			child.Close()
			return nil, err
		}
		if done {
			break
		}
		rowTuple, ok := child.CurrentTuple().(*tuple.RowTuple)
		if !ok || rowTuple == nil {
			common.ShPrintf(common.WARN, "child operator emitted a tuple without record: %v\n", child.CurrentTuple())
			child.Close()
			return nil, fmt.Errorf("%T: %w", child.CurrentTuple(), ErrNotRowTuple)
		}
		records = append(records, rowTuple.Record().DeepCopy())
	}

	if err := child.Close(); err != nil {
		common.ShPrintf(common.WARN, "failed to close child operator: %v\n", err)
		return nil, err
	}
	return records, nil
}
