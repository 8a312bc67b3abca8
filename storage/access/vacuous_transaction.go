package access

import (
	"github.com/meguriri/miniob-2025/catalog"
	"github.com/meguriri/miniob-2025/storage/record"
	"github.com/meguriri/miniob-2025/types"
)

// VacuousTransaction applies every write to the table directly.
// there is no isolation and nothing to roll back.
type VacuousTransaction struct {
	txnId types.TxnID
	state TransactionState
}

func NewVacuousTransaction(txnId types.TxnID) *VacuousTransaction {
	return &VacuousTransaction{txnId, GROWING}
}

func (txn *VacuousTransaction) GetTransactionId() types.TxnID { return txn.txnId }

func (txn *VacuousTransaction) GetState() TransactionState { return txn.state }

func (txn *VacuousTransaction) SetState(state TransactionState) { txn.state = state }

func (txn *VacuousTransaction) InsertRecord(table *catalog.Table, rec *record.Record) error {
	return table.InsertRecord(rec)
}

func (txn *VacuousTransaction) DeleteRecord(table *catalog.Table, rec *record.Record) error {
	return table.DeleteRecord(rec)
}

func (txn *VacuousTransaction) UpdateRecord(table *catalog.Table, old *record.Record, newRec *record.Record) error {
	return table.UpdateRecord(old, newRec)
}
