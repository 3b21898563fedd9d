package sim

import "strings"

// pages converts plain ints to a reference sequence.
func pages(ids ...int) []PageID {
	refs := make([]PageID, len(ids))
	for i, id := range ids {
		refs[i] = PageID(id)
	}
	return refs
}

// slotsOf builds an expected frame snapshot; -1 marks an empty slot.
func slotsOf(ids ...int) []Slot {
	out := make([]Slot, len(ids))
	for i, id := range ids {
		if id >= 0 {
			out[i] = Holding(PageID(id))
		}
	}
	return out
}

func algorithmKey(alg Algorithm) string {
	return strings.ToLower(alg.String())
}
