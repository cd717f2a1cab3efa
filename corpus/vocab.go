package corpus

// Vocab assigns consecutive ids starting at 1 to strings and resolves
// them back. Id 0 is never assigned; it is reserved for Boundary.
type Vocab struct {
	ids   map[string]uint32
	names []string
}

func NewVocab() *Vocab {
	return &Vocab{
		ids:   make(map[string]uint32),
		names: []string{""},
	}
}

// Internalize returns the id of s, assigning the next free id if s
// has not been seen before.
func (v *Vocab) Internalize(s string) uint32 {
	if id, ok := v.ids[s]; ok {
		return id
	}
	id := uint32(len(v.names))
	v.ids[s] = id
	v.names = append(v.names, s)
	return id
}

// Lookup returns the id of s without assigning one.
func (v *Vocab) Lookup(s string) (uint32, bool) {
	id, ok := v.ids[s]
	return id, ok
}

// Resolve returns the string for id, or "" for Boundary and unknown ids.
func (v *Vocab) Resolve(id uint32) string {
	if id == Boundary || int(id) >= len(v.names) {
		return ""
	}
	return v.names[id]
}

// Len is the number of assigned ids, Boundary excluded.
func (v *Vocab) Len() int {
	return len(v.names) - 1
}
