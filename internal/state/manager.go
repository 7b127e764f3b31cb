// Package state tracks per-user dialog state for multi-step input flows.
package state

import (
	"sync"
	"time"
)

type DialogState string

const (
	StateIdle DialogState = "idle"

	// Target setup sequence, in order.
	StateAwaitingStartDate DialogState = "awaiting_start_date"
	StateAwaitingDuration  DialogState = "awaiting_duration"
	StateAwaitingAmount    DialogState = "awaiting_amount"

	// Amount entry for marking a day.
	StateRecordingToday     DialogState = "recording_today"
	StateRecordingYesterday DialogState = "recording_yesterday"
)

// PendingTarget accumulates the target-setup inputs until the sequence
// completes. It is discarded on completion or cancel.
type PendingTarget struct {
	StartDate    time.Time
	DurationDays int
	PerDayAmount int64
}

type UserSession struct {
	UserID  int64
	State   DialogState
	Pending PendingTarget
}

type Manager struct {
	sessions map[int64]*UserSession
	mu       sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[int64]*UserSession),
	}
}

func (m *Manager) State(userID int64) DialogState {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if session, exists := m.sessions[userID]; exists {
		return session.State
	}
	return StateIdle
}

func (m *Manager) SetState(userID int64, state DialogState) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if session, exists := m.sessions[userID]; exists {
		session.State = state
		return
	}
	m.sessions[userID] = &UserSession{UserID: userID, State: state}
}

// UpdatePending mutates the pending target under the manager lock.
func (m *Manager) UpdatePending(userID int64, update func(*PendingTarget)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, exists := m.sessions[userID]
	if !exists {
		session = &UserSession{UserID: userID, State: StateIdle}
		m.sessions[userID] = session
	}
	update(&session.Pending)
}

func (m *Manager) Pending(userID int64) PendingTarget {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if session, exists := m.sessions[userID]; exists {
		return session.Pending
	}
	return PendingTarget{}
}

// Clear resets the user to idle and drops any pending input.
func (m *Manager) Clear(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, userID)
}
