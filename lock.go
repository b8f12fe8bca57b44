// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surfacefactory

import "sync"

// Lock serializes all device and surface mutation for one or more
// factories. Factories that borrow the same compositing device should share
// a single Lock so their draws never interleave.
//
// Acquire blocks until the lock is held and returns a session token;
// releasing the token unlocks. The lock is not re-entrant: nested
// acquisition on the same goroutine deadlocks, and the factory only ever
// nests acquisitions in sequential, non-recursive call chains.
type Lock struct {
	mu sync.Mutex
}

// NewLock creates a drawing lock.
func NewLock() *Lock {
	return &Lock{}
}

// Acquire blocks until the lock is held and returns the session token.
func (l *Lock) Acquire() *LockSession {
	l.mu.Lock()
	return &LockSession{l: l}
}

// LockSession is a held acquisition of a Lock. Release it on every exit
// path, typically with defer.
type LockSession struct {
	l    *Lock
	once sync.Once
}

// Release unlocks. Release is idempotent, so it is safe both to defer it
// and to call it early on a fast path.
func (s *LockSession) Release() {
	s.once.Do(s.l.mu.Unlock)
}
