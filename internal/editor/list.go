package editor

import (
	"context"
	"sync"
)

// EntityState is the nested sub-editor lifecycle state.
type EntityState int

const (
	EntityIdle EntityState = iota
	EntityEditing
)

// ListEditor is the nested sub-editor for one list entity inside a parent
// document (a team member, a project, an FAQ item). Opening it copies the
// entity into a draft; saving merges the draft back into the parent draft
// and immediately persists the whole parent document. Cancel discards the
// entity draft without touching the parent.
type ListEditor[D any, E any] struct {
	parent   *Editor[D]
	validate func(E) error
	merge    func(*D, E) int64
	remove   func(*D, int64) bool

	mu    sync.Mutex
	state EntityState
	draft E
}

// NewListEditor creates the sub-editor for a list entity type. merge upserts
// the entity into the parent draft (replace by id, or append if new) and
// returns the entity's id; remove deletes by id, reporting whether anything
// was removed.
func NewListEditor[D any, E any](parent *Editor[D], validate func(E) error, merge func(*D, E) int64, remove func(*D, int64) bool) *ListEditor[D, E] {
	return &ListEditor[D, E]{
		parent:   parent,
		validate: validate,
		merge:    merge,
		remove:   remove,
	}
}

// State returns the sub-editor state.
func (l *ListEditor[D, E]) State() EntityState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Begin opens the sub-editor with the given entity draft: a fresh zero-id
// entity for "add new", or a copy of an existing entity for "edit".
func (l *ListEditor[D, E]) Begin(entity E) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.draft = clone(entity)
	l.state = EntityEditing
}

// Draft returns a copy of the entity draft.
func (l *ListEditor[D, E]) Draft() E {
	l.mu.Lock()
	defer l.mu.Unlock()
	return clone(l.draft)
}

// Update mutates the entity draft in memory.
func (l *ListEditor[D, E]) Update(fn func(*E)) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state != EntityEditing {
		return ErrNotReady
	}
	fn(&l.draft)
	return nil
}

// Cancel discards the entity draft without mutating the parent.
func (l *ListEditor[D, E]) Cancel() {
	l.mu.Lock()
	defer l.mu.Unlock()
	var zero E
	l.draft = zero
	l.state = EntityIdle
}

// Save validates the entity draft, merges it into the parent draft and
// persists the whole parent document. Validation failure happens before any
// network call and keeps the sub-editor open so the user can fix the flagged
// fields. A failed write also keeps the sub-editor open; the parent draft is
// only updated when the write succeeds.
func (l *ListEditor[D, E]) Save(ctx context.Context) error {
	l.mu.Lock()
	if l.state != EntityEditing {
		l.mu.Unlock()
		return ErrNotReady
	}
	entity := clone(l.draft)
	l.mu.Unlock()

	if l.validate != nil {
		if err := l.validate(entity); err != nil {
			l.parent.notifier.Error(err.Error())
			return err
		}
	}

	candidate := l.parent.Draft()
	l.merge(&candidate, entity)

	if err := l.parent.saveValue(ctx, candidate); err != nil {
		return err
	}

	l.mu.Lock()
	var zero E
	l.draft = zero
	l.state = EntityIdle
	l.mu.Unlock()
	return nil
}

// Delete removes the entity with the given id from the parent draft and
// persists the change. The caller must pass confirmed=true; deletion is
// immediate and not reversible, so the UI asks first.
func (l *ListEditor[D, E]) Delete(ctx context.Context, id int64, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}

	candidate := l.parent.Draft()
	if !l.remove(&candidate, id) {
		return ErrEntityNotFound
	}

	return l.parent.saveValue(ctx, candidate)
}
