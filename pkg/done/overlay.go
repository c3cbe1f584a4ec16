// Package done keeps the client-local completion flags, keyed by
// provider event id. The provider never sees these.
package done

// Store is the durable backing for the overlay mapping. Implementations
// read and write the whole mapping at once; the overlay is small and a
// full rewrite per toggle keeps the contract trivial.
type Store interface {
	Load() (map[string]bool, error)
	Save(map[string]bool) error
}

// Overlay is the in-session view of the completion flags. Absent ids
// default to false. Entries are never pruned: an id whose event left the
// current fetch window keeps its flag.
type Overlay struct {
	store Store
	flags map[string]bool
}

// NewOverlay loads the mapping from the store. Absent, unreadable, or
// malformed stored data degrades to an empty mapping rather than failing.
func NewOverlay(s Store) *Overlay {
	o := &Overlay{store: s, flags: make(map[string]bool)}
	o.Reload()
	return o
}

// IsDone reports the flag for id, false when unknown.
func (o *Overlay) IsDone(id string) bool {
	return o.flags[id]
}

// SetDone records the flag and persists the full mapping. Persistence
// failures are swallowed: the in-memory flag still takes effect for the
// rest of the session, it is just not guaranteed durable.
func (o *Overlay) SetDone(id string, v bool) {
	if id == "" {
		return
	}
	o.flags[id] = v
	if o.store != nil {
		_ = o.store.Save(o.flags)
	}
}

// Toggle flips the flag for id and returns the new value.
func (o *Overlay) Toggle(id string) bool {
	next := !o.IsDone(id)
	o.SetDone(id, next)
	return next
}

// Reload replaces the in-memory mapping with the stored one, falling
// back to empty on any load failure.
func (o *Overlay) Reload() {
	if o.store == nil {
		return
	}
	flags, err := o.store.Load()
	if err != nil || flags == nil {
		o.flags = make(map[string]bool)
		return
	}
	o.flags = flags
}

// Len reports how many ids carry a stored flag.
func (o *Overlay) Len() int { return len(o.flags) }
