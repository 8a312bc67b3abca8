package miniob

import (
	stderrors "errors"
	"sync"

	"github.com/meguriri/miniob-2025/common"
	"github.com/meguriri/miniob-2025/errors"
	"github.com/meguriri/miniob-2025/types"
)

// ErrRequestManagerStopped is the result of a request which was never run
// because the request manager stopped first.
const ErrRequestManagerStopped = errors.Error("request manager is stopped")

type ReqResult struct {
	Err      error
	Result   [][]types.Value
	reqId    uint64
	stmt     interface{}
	callerCh chan *ReqResult
}

type queryRequest struct {
	reqId    uint64
	stmt     interface{}
	callerCh chan *ReqResult
}

// RequestManager runs queued statements concurrently, at most
// common.MaxTxnThreadNum at a time. A statement aborted by a lock
// conflict is put back to the head of the queue and run again.
// Every request gets exactly one result on its channel.
type RequestManager struct {
	mdb               *MiniobDB
	nextReqId         uint64
	execQue           []*queryRequest
	queMutex          *sync.Mutex
	curExectingReqNum uint64
	inCh              chan *ReqResult
	doneCh            chan struct{}
	isExecutionActive bool
	retriedNum        uint64
}

func NewRequestManager(mdb *MiniobDB) *RequestManager {
	ch := make(chan *ReqResult, 100)
	return &RequestManager{mdb, 0, make([]*queryRequest, 0), new(sync.Mutex), 0, ch, make(chan struct{}), true, 0}
}

// AppendRequest queues stmt. the result is delivered on the returned channel.
func (reqManager *RequestManager) AppendRequest(stmt interface{}) <-chan *ReqResult {
	retCh := make(chan *ReqResult, 1)

	reqManager.queMutex.Lock()
	qr := &queryRequest{reqManager.nextReqId, stmt, retCh}
	reqManager.nextReqId++
	if !reqManager.isExecutionActive {
		reqManager.queMutex.Unlock()
		reqManager.reject(qr)
		return retCh
	}
	reqManager.execQue = append(reqManager.execQue, qr)
	reqManager.queMutex.Unlock()

	// wake up execution thread
	reqManager.inCh <- nil

	return retCh
}

func (reqManager *RequestManager) reject(qr *queryRequest) {
	qr.callerCh <- &ReqResult{ErrRequestManagerStopped, nil, qr.reqId, qr.stmt, qr.callerCh}
}

// caller must having lock of queMutex
func (reqManager *RequestManager) retrieveRequest() *queryRequest {
	retVal := reqManager.execQue[0]
	reqManager.execQue = reqManager.execQue[1:]
	return retVal
}

func (reqManager *RequestManager) StartTh() {
	go reqManager.Run()
}

// StopTh stops accepting requests and returns after the statements already
// running have delivered their results. queued requests get ErrRequestManagerStopped.
func (reqManager *RequestManager) StopTh() {
	reqManager.queMutex.Lock()
	wasActive := reqManager.isExecutionActive
	reqManager.isExecutionActive = false
	reqManager.queMutex.Unlock()
	if wasActive {
		reqManager.inCh <- nil
	}
	<-reqManager.doneCh
}

// RetriedNum is the number of times an aborted statement was queued again
func (reqManager *RequestManager) RetriedNum() uint64 {
	reqManager.queMutex.Lock()
	defer reqManager.queMutex.Unlock()
	return reqManager.retriedNum
}

// caller must having lock of queMutex
func (reqManager *RequestManager) executeQuedTxns() {
	qr := reqManager.retrieveRequest()
	go reqManager.mdb.executeStatementForTxnTh(reqManager.inCh, qr)
	reqManager.curExectingReqNum++
}

// caller must having lock of queMutex
func (reqManager *RequestManager) handleAbortedByCCTxn(result *ReqResult) {
	reqManager.execQue = append([]*queryRequest{{result.reqId, result.stmt, result.callerCh}}, reqManager.execQue...)
	reqManager.retriedNum++
	common.ShPrintf(common.DEBUG_INFO, "request %d aborted, queued again\n", result.reqId)
}

func (reqManager *RequestManager) Run() {
	defer close(reqManager.doneCh)
	for {
		recvVal := <-reqManager.inCh

		reqManager.queMutex.Lock()
		if recvVal != nil { // receive result
			reqManager.curExectingReqNum--
			if reqManager.isExecutionActive && recvVal.Err != nil && stderrors.Is(recvVal.Err, QueryAbortedErr) {
				reqManager.handleAbortedByCCTxn(recvVal)
			} else {
				// buffered, each request has one result
				recvVal.callerCh <- recvVal
			}
		}

		// on stop, wait for the running statements and reject the queued ones
		if !reqManager.isExecutionActive {
			if reqManager.curExectingReqNum > 0 {
				reqManager.queMutex.Unlock()
				continue
			}
			for _, qr := range reqManager.execQue {
				reqManager.reject(qr)
			}
			reqManager.execQue = reqManager.execQue[:0]
			reqManager.queMutex.Unlock()
			return
		}

		for len(reqManager.execQue) > 0 && reqManager.curExectingReqNum < common.MaxTxnThreadNum {
			reqManager.executeQuedTxns()
		}
		reqManager.queMutex.Unlock()
	}
}
