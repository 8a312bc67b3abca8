package access

import (
	"github.com/meguriri/miniob-2025/catalog"
	"github.com/meguriri/miniob-2025/storage/record"
	"github.com/meguriri/miniob-2025/types"
	pair "github.com/notEpsilon/go-pair"
)

/**
 * Transaction states:
 *
 *     _________________________
 *    |                         v
 * GROWING -> SHRINKING -> COMMITTED   ABORTED
 *    |__________|________________________^
 *
 **/

type TransactionState int32

const (
	GROWING TransactionState = iota
	SHRINKING
	COMMITTED
	ABORTED
)

func (s TransactionState) String() string {
	switch s {
	case GROWING:
		return "GROWING"
	case SHRINKING:
		return "SHRINKING"
	case COMMITTED:
		return "COMMITTED"
	case ABORTED:
		return "ABORTED"
	}
	return "UNKNOWN"
}

// TxnKind selects the concurrency control of a new transaction
type TxnKind int32

const (
	VACUOUS TxnKind = iota
	LOCKING
)

/**
 * Type of write operation.
 */
type WType int32

const (
	INSERT WType = iota
	DELETE
	UPDATE
)

// Transaction is the write path every operator goes through.
// An implementation decides whether a change is applied at once, locked, or logged.
type Transaction interface {
	GetTransactionId() types.TxnID
	GetState() TransactionState
	InsertRecord(table *catalog.Table, rec *record.Record) error
	DeleteRecord(table *catalog.Table, rec *record.Record) error
	// UpdateRecord replaces the content of old with the content of newRec.
	// both records carry the same rid.
	UpdateRecord(table *catalog.Table, old *record.Record, newRec *record.Record) error
}

/**
 * WriteRecord tracks information related to a write.
 * records.First is the image before the write and records.Second the one after it.
 * For INSERT only Second is set, for DELETE only First.
 */
type WriteRecord struct {
	wtype   WType
	table   *catalog.Table
	records pair.Pair[*record.Record, *record.Record]
}

func NewWriteRecord(wtype WType, table *catalog.Table, before *record.Record, after *record.Record) *WriteRecord {
	ret := new(WriteRecord)
	ret.wtype = wtype
	ret.table = table
	if before != nil {
		ret.records.First = before.DeepCopy()
	}
	if after != nil {
		ret.records.Second = after.DeepCopy()
	}
	return ret
}

func (w *WriteRecord) WType() WType {
	return w.wtype
}

func (w *WriteRecord) Table() *catalog.Table {
	return w.table
}

func (w *WriteRecord) Before() *record.Record {
	return w.records.First
}

func (w *WriteRecord) After() *record.Record {
	return w.records.Second
}

// undo reverts the write on the table
func (w *WriteRecord) undo() error {
	switch w.wtype {
	case INSERT:
		return w.table.DeleteRecord(w.records.Second)
	case DELETE:
		return w.table.RestoreRecord(w.records.First)
	case UPDATE:
		return w.table.UpdateRecord(w.records.Second, w.records.First)
	}
	return nil
}
