package illustrate

import (
	"sync"

	"github.com/gogpu/figure/drawing"
)

// Target is a mounted figure whose content can be replaced in place.
// Its identity never changes across replacements.
type Target interface {
	InstanceID() string
	ExerciseID() string
	Replace(d *drawing.Drawing) error
}

// StyledTarget is a Target that pins per-render options. Frames drawn for
// it use its Style instead of the context defaults.
type StyledTarget interface {
	Target
	Style() Style
}

// Registry is the set of mounted targets, in mount order.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	targets []Target
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register mounts t. A target with the same instance id is replaced in
// place, keeping its position.
func (r *Registry) Register(t Target) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.targets {
		if existing.InstanceID() == t.InstanceID() {
			r.targets[i] = t
			return
		}
	}
	r.targets = append(r.targets, t)
}

// Unregister removes the target with the given instance id and reports
// whether it was mounted.
func (r *Registry) Unregister(instanceID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.targets {
		if t.InstanceID() == instanceID {
			r.targets = append(r.targets[:i], r.targets[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the target with the given instance id.
func (r *Registry) Get(instanceID string) (Target, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.targets {
		if t.InstanceID() == instanceID {
			return t, true
		}
	}
	return nil, false
}

// Len returns the number of mounted targets.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.targets)
}

// Each calls fn for every target in mount order. It iterates over a
// snapshot, so fn may mount or unmount targets.
func (r *Registry) Each(fn func(Target)) {
	r.mu.RLock()
	snapshot := make([]Target, len(r.targets))
	copy(snapshot, r.targets)
	r.mu.RUnlock()

	for _, t := range snapshot {
		fn(t)
	}
}
