package state

// FilterSet is an insertion-ordered set of selected filter ids
type FilterSet struct {
	IDs []string `msgpack:"ids" json:"ids"`
}

// NewFilterSet builds a set from ids, dropping duplicates and keeping first occurrences
func NewFilterSet(ids ...string) FilterSet {
	fs := FilterSet{IDs: []string{}}
	for _, id := range ids {
		if id != "" && !fs.Contains(id) {
			fs.IDs = append(fs.IDs, id)
		}
	}
	return fs
}

// Toggle removes id when present, otherwise appends it.
// Returns true when the id is selected after the call.
func (f *FilterSet) Toggle(id string) bool {
	for i, existing := range f.IDs {
		if existing == id {
			f.IDs = append(f.IDs[:i:i], f.IDs[i+1:]...)
			return false
		}
	}
	f.IDs = append(f.IDs, id)
	return true
}

func (f FilterSet) Contains(id string) bool {
	for _, existing := range f.IDs {
		if existing == id {
			return true
		}
	}
	return false
}

func (f FilterSet) Len() int {
	return len(f.IDs)
}

// Selected returns a copy of the ids in insertion order
func (f FilterSet) Selected() []string {
	out := make([]string, len(f.IDs))
	copy(out, f.IDs)
	return out
}
