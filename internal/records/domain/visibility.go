package domain

import (
	"slices"

	shareddomain "scout-server/internal/shared_kernel/domain"
)

// Visibility is the set of records a caller may read in one table.
type Visibility struct {
	All       bool
	RecordIDs map[shareddomain.ID]struct{}
}

func AllRecords() Visibility {
	return Visibility{All: true}
}

func NoRecords() Visibility {
	return Visibility{RecordIDs: map[shareddomain.ID]struct{}{}}
}

func (v *Visibility) Add(ids ...shareddomain.ID) {
	if v.RecordIDs == nil {
		v.RecordIDs = make(map[shareddomain.ID]struct{}, len(ids))
	}
	for _, id := range ids {
		v.RecordIDs[id] = struct{}{}
	}
}

func (v Visibility) Contains(id shareddomain.ID) bool {
	if v.All {
		return true
	}
	_, ok := v.RecordIDs[id]
	return ok
}

func (v Visibility) IsEmpty() bool {
	return !v.All && len(v.RecordIDs) == 0
}

// IDs lists the visible ids in a stable order. It is empty when All is set.
func (v Visibility) IDs() []shareddomain.ID {
	ids := make([]shareddomain.ID, 0, len(v.RecordIDs))
	for id := range v.RecordIDs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
