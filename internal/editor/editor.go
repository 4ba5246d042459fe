// Package editor implements the generic section-editor engine behind the
// admin panel. Every feature (home, team, projects, faq, footer, page
// settings) is the same pattern: load one document, mutate an in-memory
// draft, persist the whole document back atomically on an explicit save. The
// engine is parameterized by document key, built-in default and a validation
// function, so the state machine exists exactly once.
package editor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/minproducer/kulana-cms/internal/domain/entities"
)

// State is the editor lifecycle state.
type State int

const (
	StateLoading State = iota
	StateReady
	StateSaving
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateSaving:
		return "saving"
	case StateError:
		return "error"
	}
	return "unknown"
}

// Engine errors
var (
	ErrSaveInFlight         = errors.New("save already in flight")
	ErrNotReady             = errors.New("editor is not ready")
	ErrConfirmationRequired = errors.New("deletion requires confirmation")
	ErrEntityNotFound       = errors.New("entity not found")
)

// DocumentClient is the slice of the config client the engine needs.
type DocumentClient interface {
	FetchDocument(ctx context.Context, key string) (json.RawMessage, error)
	WriteDocument(ctx context.Context, key string, value interface{}) error
}

// Notifier receives the transient success/error notifications an editor
// emits around saves. The admin UI renders them as toasts.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}

// Editor manages one configuration document: fetch on load, in-memory draft
// edits, wholesale persist on save. A second save while one is in flight is
// refused. A failed save leaves the draft intact so no input is ever lost.
type Editor[D any] struct {
	key      string
	def      D
	validate func(D) error
	client   DocumentClient
	notifier Notifier

	mu      sync.Mutex
	state   State
	draft   D
	lastErr error
}

// New creates an editor for the document stored under key. def is the
// built-in default used when the key has never been written. validate may be
// nil for documents with no draft-level constraints.
func New[D any](client DocumentClient, notifier Notifier, key string, def D, validate func(D) error) *Editor[D] {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Editor[D]{
		key:      key,
		def:      def,
		validate: validate,
		client:   client,
		notifier: notifier,
		state:    StateLoading,
	}
}

// Load fetches the document and seeds the draft. A not-found result falls
// back to the built-in default without surfacing an error; any other failure
// leaves the editor in a retryable error state (call Load again).
func (e *Editor[D]) Load(ctx context.Context) error {
	e.mu.Lock()
	e.state = StateLoading
	e.mu.Unlock()

	raw, err := e.client.FetchDocument(ctx, e.key)

	e.mu.Lock()
	defer e.mu.Unlock()

	if err != nil {
		if errors.Is(err, entities.ErrConfigNotFound) {
			e.draft = clone(e.def)
			e.state = StateReady
			e.lastErr = nil
			return nil
		}
		e.state = StateError
		e.lastErr = err
		return err
	}

	var doc D
	if err := json.Unmarshal(raw, &doc); err != nil {
		err = fmt.Errorf("malformed %s document: %w", e.key, err)
		e.state = StateError
		e.lastErr = err
		return err
	}

	e.draft = doc
	e.state = StateReady
	e.lastErr = nil
	return nil
}

// State returns the current lifecycle state.
func (e *Editor[D]) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Err returns the error that put the editor into StateError, if any.
func (e *Editor[D]) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastErr
}

// Draft returns a copy of the current draft.
func (e *Editor[D]) Draft() D {
	e.mu.Lock()
	defer e.mu.Unlock()
	return clone(e.draft)
}

// Update mutates the in-memory draft. No network call happens here; edits
// accumulate until Save.
func (e *Editor[D]) Update(fn func(*D)) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateReady {
		return ErrNotReady
	}
	fn(&e.draft)
	return nil
}

// Save validates the draft and writes the whole document. On success the
// draft becomes the just-written value and a success notification is
// emitted; on failure the unsaved draft stays intact and an error
// notification is emitted.
func (e *Editor[D]) Save(ctx context.Context) error {
	e.mu.Lock()
	if e.state == StateSaving {
		e.mu.Unlock()
		return ErrSaveInFlight
	}
	if e.state != StateReady {
		e.mu.Unlock()
		return ErrNotReady
	}
	candidate := clone(e.draft)
	e.mu.Unlock()

	return e.saveValue(ctx, candidate)
}

// saveValue runs the shared validate-write-commit path for a candidate
// document. The candidate only becomes the draft if the write succeeds.
func (e *Editor[D]) saveValue(ctx context.Context, candidate D) error {
	if e.validate != nil {
		if err := e.validate(candidate); err != nil {
			e.notifier.Error(err.Error())
			return err
		}
	}

	e.mu.Lock()
	if e.state == StateSaving {
		e.mu.Unlock()
		return ErrSaveInFlight
	}
	e.state = StateSaving
	e.mu.Unlock()

	err := e.client.WriteDocument(ctx, e.key, candidate)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = StateReady

	if err != nil {
		e.notifier.Error(fmt.Sprintf("failed to save %s: %v", e.key, err))
		return err
	}

	e.draft = candidate
	e.notifier.Success(fmt.Sprintf("%s saved", e.key))
	return nil
}

// clone deep-copies a document through its JSON form. Documents are plain
// data, so the round trip is lossless.
func clone[D any](doc D) D {
	data, err := json.Marshal(doc)
	if err != nil {
		panic(fmt.Sprintf("clone document: %v", err))
	}
	var out D
	if err := json.Unmarshal(data, &out); err != nil {
		panic(fmt.Sprintf("clone document: %v", err))
	}
	return out
}
