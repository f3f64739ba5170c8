package dirscan

import (
	"fmt"
	"io"
)

// Action is applied to each matching entry by ForEachMatching.
// Accumulating actions own their state; the caller reads it back after the scan.
// A non-nil error aborts the scan and is returned to the caller unchanged.
type Action interface {
	Perform(entry Entry) error
}

// ActionFunc adapts an ordinary function to the Action interface.
type ActionFunc func(entry Entry) error

// Perform calls f(entry).
func (f ActionFunc) Perform(entry Entry) error {
	return f(entry)
}

// Chain performs each action in order and stops at the first error.
func Chain(actions ...Action) Action {
	return ActionFunc(func(entry Entry) error {
		for _, action := range actions {
			if err := action.Perform(entry); err != nil {
				return err
			}
		}

		return nil
	})
}

// Where performs action only for entries matching f. A nil filter matches everything.
func Where(f Filter, action Action) Action {
	return ActionFunc(func(entry Entry) error {
		if !matches(f, entry) {
			return nil
		}

		return action.Perform(entry)
	})
}

// SizeAccumulator sums the sizes of the entries it is given.
type SizeAccumulator struct {
	Total int64
}

// Perform adds the entry size to Total.
func (a *SizeAccumulator) Perform(entry Entry) error {
	a.Total += entry.Size
	return nil
}

// RecentTracker keeps the entry with the latest modification time.
//
// A later entry replaces the current one only if its time is strictly after it,
// so among entries with equal times the first one seen is kept.
type RecentTracker struct {
	latest Entry
	found  bool
}

// Perform offers an entry to the tracker.
func (r *RecentTracker) Perform(entry Entry) error {
	if r.found && !entry.ModTime.After(r.latest.ModTime) {
		return nil
	}

	r.latest = entry
	r.found = true

	return nil
}

// Result returns the most recent entry, and false if no entry was offered.
func (r *RecentTracker) Result() (Entry, bool) {
	return r.latest, r.found
}

// Counter counts the entries it is given and records their names in order.
type Counter struct {
	Count int
	Names []string
}

// Perform records the entry.
func (c *Counter) Perform(entry Entry) error {
	c.Count++
	c.Names = append(c.Names, entry.Name)

	return nil
}

// Printer writes one line per entry.
type Printer struct {
	w      io.Writer
	format func(Entry) string
}

// NewPrinter creates a Printer. A nil format prints the entry name.
func NewPrinter(w io.Writer, format func(Entry) string) *Printer {
	if format == nil {
		format = func(entry Entry) string { return entry.Name }
	}

	return &Printer{w: w, format: format}
}

// Perform writes the formatted entry followed by a newline.
func (p *Printer) Perform(entry Entry) error {
	_, err := fmt.Fprintln(p.w, p.format(entry))
	if err != nil {
		return fmt.Errorf("failed to print %s: %w", entry.Name, err)
	}

	return nil
}
