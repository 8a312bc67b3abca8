// this code is from https://github.com/pzhzqt/goostub
// there is license and copyright notice in licenses/goostub dir

package common

import (
	"github.com/sasha-s/go-deadlock"
)

type ReaderWriterLatch interface {
	WLock()
	WUnlock()
	RLock()
	RUnlock()
}

type readerWriterLatch struct {
	mutex *deadlock.RWMutex
}

// NewRWLatch returns a latch which reports lock-order inversions and
// long waits through go-deadlock when EnableDebug is set.
func NewRWLatch() ReaderWriterLatch {
	deadlock.Opts.Disable = !EnableDebug
	return &readerWriterLatch{new(deadlock.RWMutex)}
}

func (l *readerWriterLatch) WLock() {
	l.mutex.Lock()
}

func (l *readerWriterLatch) WUnlock() {
	l.mutex.Unlock()
}

func (l *readerWriterLatch) RLock() {
	l.mutex.RLock()
}

func (l *readerWriterLatch) RUnlock() {
	l.mutex.RUnlock()
}
