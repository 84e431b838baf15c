// Package store provides server-side persistence of display-mode preferences.
package store

import "errors"

// ErrNotFound is returned when no preference is stored for a visitor.
var ErrNotFound = errors.New("preference not found")

// RWLocker is the locking subset of sync.RWMutex.
type RWLocker interface {
	Lock()
	Unlock()
	RLock()
	RUnlock()
}

// noopLocker is used for postgres, which handles concurrent writers itself.
type noopLocker struct{}

func (noopLocker) Lock()    {}
func (noopLocker) Unlock()  {}
func (noopLocker) RLock()   {}
func (noopLocker) RUnlock() {}
