// Package terms provides the proposal value exchanged between two parties.
package terms

// Terms is a snapshot of what each party gives and gets under a proposal.
// AGets and BGives describe the same items from opposite sides and stay
// index-aligned; the same holds for AGives and BGets. Terms is a value:
// every operation returns a fresh copy and never touches the receiver.
type Terms struct {
	// AGives lists what party A puts on the table.
	AGives []string `json:"a_gives" yaml:"a_gives"`

	// AGets lists what party A receives.
	AGets []string `json:"a_gets" yaml:"a_gets"`

	// BGives lists what party B puts on the table.
	BGives []string `json:"b_gives" yaml:"b_gives"`

	// BGets lists what party B receives.
	BGets []string `json:"b_gets" yaml:"b_gets"`
}

// New creates a Terms value with defensive copies of all four lists.
func New(aGives, aGets, bGives, bGets []string) Terms {
	return Terms{
		AGives: copyList(aGives),
		AGets:  copyList(aGets),
		BGives: copyList(bGives),
		BGets:  copyList(bGets),
	}
}

// Clone returns a deep copy.
func (t Terms) Clone() Terms {
	return New(t.AGives, t.AGets, t.BGives, t.BGets)
}

// Swapped returns the same proposal viewed from the other party's side.
func (t Terms) Swapped() Terms {
	return New(t.BGives, t.BGets, t.AGives, t.AGets)
}

// ANet returns party A's gets-minus-gives count.
func (t Terms) ANet() int {
	return len(t.AGets) - len(t.AGives)
}

// BNet returns party B's gets-minus-gives count.
func (t Terms) BNet() int {
	return len(t.BGets) - len(t.BGives)
}

// LastAGet returns the tail item of party A's gets list, if any.
func (t Terms) LastAGet() (string, bool) {
	if len(t.AGets) == 0 {
		return "", false
	}
	return t.AGets[len(t.AGets)-1], true
}

// DropLastAGet removes the tail item from party A's gets list, mirrored by
// removing the aligned entry from party B's gives list. The gets list never
// drops below one entry; when it cannot shrink, the original value is
// returned unchanged with ok=false.
func (t Terms) DropLastAGet() (next Terms, removed string, ok bool) {
	if len(t.AGets) <= 1 {
		return t, "", false
	}

	next = t.Clone()
	idx := len(next.AGets) - 1
	removed = next.AGets[idx]
	next.AGets = next.AGets[:idx]
	next.BGives = removeMirrored(next.BGives, idx, removed)
	return next, removed, true
}

// WithExtraAGive returns a copy with one item appended to party A's gives
// list and mirrored onto party B's gets list.
func (t Terms) WithExtraAGive(item string) Terms {
	next := t.Clone()
	next.AGives = append(next.AGives, item)
	next.BGets = append(next.BGets, item)
	return next
}

// ContainsAGive reports whether party A already gives the item.
func (t Terms) ContainsAGive(item string) bool {
	for _, v := range t.AGives {
		if v == item {
			return true
		}
	}
	return false
}

// removeMirrored removes the entry aligned with the removed get. Index
// alignment is preferred; a value match is the fallback when the lists have
// drifted apart in length.
func removeMirrored(list []string, idx int, value string) []string {
	if idx < len(list) && list[idx] == value {
		return append(list[:idx:idx], list[idx+1:]...)
	}
	for i, v := range list {
		if v == value {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return list
}

func copyList(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
