// Package visitor walks a parsed CST and drives the builders that assemble
// the block hierarchy. A Manager deduplicates traversal work per module, and
// the walker turns tree-sitter nodes into module, class, function, and
// standalone builders.
package visitor

import (
	"sync"

	"outline/internal/core/errors"
)

// Manager tracks which blocks a traversal has already processed, keyed by
// scope (the module ID) and block ID. The check-and-record is atomic: the
// first query for a key returns false and records it, every later query
// returns true.
type Manager struct {
	mu   sync.Mutex
	seen map[string]map[string]struct{}
}

func NewManager() *Manager {
	return &Manager{seen: make(map[string]map[string]struct{})}
}

// HasBeenProcessed reports whether key was already seen in scope, recording
// it as seen either way.
func (m *Manager) HasBeenProcessed(scope, key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	keys, ok := m.seen[scope]
	if !ok {
		keys = make(map[string]struct{})
		m.seen[scope] = keys
	}
	if _, ok := keys[key]; ok {
		return true
	}
	keys[key] = struct{}{}
	return false
}

// ResetScope forgets everything recorded for one scope, so a changed file
// can be re-walked from scratch.
func (m *Manager) ResetScope(scope string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.seen, scope)
}

var (
	globalMu      sync.Mutex
	globalManager *Manager
)

// AcquireGlobal hands out the process-wide Manager. A second acquisition
// while the first is outstanding is a programming error and fails with
// CONFLICT; concurrent pipelines should construct their own Manager instead.
func AcquireGlobal() (*Manager, error) {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalManager != nil {
		return nil, errors.New(errors.CodeConflict,
			"global visitor manager is already acquired")
	}
	globalManager = NewManager()
	return globalManager, nil
}

// ReleaseGlobal returns the process-wide Manager, making it acquirable again.
func ReleaseGlobal() {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalManager = nil
}
