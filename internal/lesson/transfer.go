package lesson

import "github.com/anirudh/explainly/internal/content"

// Transfer is the application browser for the transfer phase: a fixed
// list of real-world application entries, each with a monotonic
// "completed" flag. Completing all of them gates advancement to the test
// phase.
type Transfer struct {
	entries   []content.Application
	completed []bool

	em *emitter
}

func newTransfer(entries []content.Application, em *emitter) *Transfer {
	return &Transfer{
		entries:   entries,
		completed: make([]bool, len(entries)),
		em:        em,
	}
}

// Entries returns the application entries in display order.
func (t *Transfer) Entries() []content.Application {
	return t.entries
}

// Len returns the number of entries.
func (t *Transfer) Len() int {
	return len(t.entries)
}

// Completed reports whether entry i has been viewed.
func (t *Transfer) Completed(i int) bool {
	if i < 0 || i >= len(t.completed) {
		return false
	}
	return t.completed[i]
}

// View marks entry i completed. Marks are monotonic: an entry is never
// un-marked. Viewing the last remaining entry emits transfer_completed.
func (t *Transfer) View(i int) {
	if i < 0 || i >= len(t.completed) {
		return
	}
	t.em.emit(EventApplicationViewed, map[string]any{
		"application": t.entries[i].ID,
	})
	if t.completed[i] {
		return
	}
	t.completed[i] = true
	if t.AllCompleted() {
		t.em.emit(EventTransferCompleted, map[string]any{
			"count": len(t.entries),
		})
	}
}

// AllCompleted reports whether every entry has been viewed.
func (t *Transfer) AllCompleted() bool {
	for _, done := range t.completed {
		if !done {
			return false
		}
	}
	return true
}

// NextIncomplete returns the index of the first unviewed entry, or -1 if
// all are completed.
func (t *Transfer) NextIncomplete() int {
	for i, done := range t.completed {
		if !done {
			return i
		}
	}
	return -1
}
