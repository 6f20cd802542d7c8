// Package notify delivers the one-shot feedback every mutation emits:
// exactly one success or one failure notification per verb. List loads
// stay silent.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

type Notification struct {
	ID      string
	Kind    Kind
	Message string
	At      time.Time
}

type Notifier interface {
	Success(message string)
	Error(message string)
}

// Recorder keeps notifications in memory; the UI drains it to render
// toasts and tests assert against it.
type Recorder struct {
	mu    sync.Mutex
	notes []Notification
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) add(kind Kind, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, Notification{
		ID:      uuid.NewString(),
		Kind:    kind,
		Message: message,
		At:      time.Now(),
	})
}

func (r *Recorder) Success(message string) { r.add(KindSuccess, message) }
func (r *Recorder) Error(message string)   { r.add(KindError, message) }

// Drain returns the queued notifications and clears the queue.
func (r *Recorder) Drain() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.notes
	r.notes = nil
	return out
}

func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.notes)
}
