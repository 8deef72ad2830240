/**
 * @description
 * This file implements the view-state core shared by every management and
 * listing screen: the load state machine, client-side filtering, and the
 * modal mode. Each screen controller embeds a listView for its backing
 * collection and guards it with its own mutex.
 *
 * @notes
 * - A failed load never clobbers previously loaded rows; only the state and
 *   error message change.
 * - Every load carries a generation number; a response whose generation is
 *   no longer current is dropped, so overlapping reloads resolve to the most
 *   recently requested one.
 * - Filtering always re-derives from the full backing collection, never from
 *   an earlier filtered subset.
 * - The modal mode is a single tagged value, so at most one modal can be
 *   open at a time.
 */
package controller

import (
	"context"
	"sync"
)

// LoadState is the fetch state of a screen's backing collection.
type LoadState string

const (
	StateIdle      LoadState = "idle"
	StateLoading   LoadState = "loading"
	StateLoaded    LoadState = "loaded"
	StateLoadError LoadState = "error"
)

// Mode identifies which mutation surface is open on a screen. The zero
// value means no modal is open.
type Mode string

const (
	ModeNone          Mode = ""
	ModeCreate        Mode = "create"
	ModeEdit          Mode = "edit"
	ModeDeleteConfirm Mode = "deleteConfirm"
	ModeReview        Mode = "review"
	ModeCancelConfirm Mode = "cancelConfirm"
	ModePurchase      Mode = "purchase"
)

// listView holds the collection, load, filter and modal state of one
// screen. Access is guarded by the owning controller's mutex.
type listView[T any] struct {
	items      []T
	filtered   []T
	state      LoadState
	loadError  string
	gen        uint64
	mode       Mode
	submitting bool
	feedback   string
}

// refilter re-derives the visible rows from the full backing collection. A
// nil predicate shows everything.
func (v *listView[T]) refilter(pred func(T) bool) {
	if pred == nil {
		v.filtered = append([]T(nil), v.items...)
		return
	}
	filtered := make([]T, 0, len(v.items))
	for _, item := range v.items {
		if pred(item) {
			filtered = append(filtered, item)
		}
	}
	v.filtered = filtered
}

// openModal switches to the given mode, implicitly closing any other modal,
// and clears prior feedback.
func (v *listView[T]) openModal(mode Mode) {
	v.mode = mode
	v.feedback = ""
}

// closeModal returns the screen to its no-modal state.
func (v *listView[T]) closeModal() {
	v.mode = ModeNone
}

// loadInto runs one generation-tagged load: mark loading, fetch, and apply
// the outcome only if no newer load has started since. mu is the owning
// controller's mutex; it is released for the duration of the fetch. pred is
// resolved under the lock at apply time, so a filter changed while the fetch
// was in flight is honored by the arriving rows. A nil pred shows everything.
func loadInto[T any](ctx context.Context, mu *sync.Mutex, view *listView[T], fetch func(context.Context) ([]T, error), failMessage string, pred func() func(T) bool) error {
	mu.Lock()
	view.gen++
	gen := view.gen
	view.state = StateLoading
	view.loadError = ""
	mu.Unlock()

	items, err := fetch(ctx)

	mu.Lock()
	defer mu.Unlock()
	if gen != view.gen {
		// A newer load owns the view now.
		return nil
	}
	if err != nil {
		view.state = StateLoadError
		view.loadError = failMessage
		return err
	}
	view.items = items
	var filter func(T) bool
	if pred != nil {
		filter = pred()
	}
	view.refilter(filter)
	view.state = StateLoaded
	return nil
}
