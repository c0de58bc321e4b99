package client

import (
	"sync"

	"github.com/sofush/uml-go/diagram"
)

// PromptRegistry enforces the "only one prompt open at a time globally"
// invariant (spec: Document §3). It is the mechanical stand-in for the
// single thread-local dialog the host browser UI owns.
type PromptRegistry struct {
	mu     sync.Mutex
	open   bool
	owner  diagram.Id
	prompt diagram.Prompt
}

// Open records a new open prompt for the given element, returning false
// (and leaving the registry untouched) if one is already open.
func (r *PromptRegistry) Open(elementID diagram.Id, prompt diagram.Prompt) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.open {
		return false
	}
	r.open = true
	r.owner = elementID
	r.prompt = prompt
	return true
}

// IsOpen reports whether a prompt is currently open.
func (r *PromptRegistry) IsOpen() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.open
}

// Close clears any open prompt unconditionally (used by Escape).
func (r *PromptRegistry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.open = false
}

// Respond clears the open prompt and returns the element id it belonged
// to, if one was open.
func (r *PromptRegistry) Respond() (diagram.Id, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.open {
		return 0, false
	}
	id := r.owner
	r.open = false
	return id, true
}
