package content

import (
	"sort"

	"github.com/google/uuid"
)

// Generic ordered-list editor shared by achievements, links, gallery
// items, milestones, quotes and tributes. Invariant maintained by every
// mutation: order values are dense and zero-based and relative order of
// untouched entries is preserved.

// EntryPatch is a partial update for Edit. Nil fields are left unchanged.
type EntryPatch struct {
	Title       *string `json:"title,omitempty"`
	Subtitle    *string `json:"subtitle,omitempty"`
	Description *string `json:"description,omitempty"`
	URL         *string `json:"url,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	Date        *string `json:"date,omitempty"`
	Author      *string `json:"author,omitempty"`
}

// Renumber rewrites order values to 0..len-1 following the current order
// sequence (stable on ties by existing position).
func Renumber(list []Entry) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Order < list[j].Order
	})
	for i := range list {
		list[i].Order = i
	}
}

// Add appends the entry with order = len and is_visible = true.
// When the list is already at capacity the list is returned unchanged and
// added is false; the caller surfaces a notice, not an error.
func Add(list []Entry, entry Entry, capacity int) (out []Entry, added bool) {
	if len(list) >= capacity {
		return list, false
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	entry.Order = len(list)
	entry.IsVisible = true
	return append(list, entry), true
}

// Edit merges the patch into the entry in place. Order is untouched.
func Edit(list []Entry, id string, patch EntryPatch) bool {
	idx := indexOf(list, id)
	if idx < 0 {
		return false
	}
	e := &list[idx]
	if patch.Title != nil {
		e.Title = *patch.Title
	}
	if patch.Subtitle != nil {
		e.Subtitle = *patch.Subtitle
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	if patch.URL != nil {
		e.URL = *patch.URL
	}
	if patch.ImageURL != nil {
		e.ImageURL = *patch.ImageURL
	}
	if patch.Date != nil {
		e.Date = *patch.Date
	}
	if patch.Author != nil {
		e.Author = *patch.Author
	}
	return true
}

// Delete removes the entry and renumbers the remainder densely.
func Delete(list []Entry, id string) (out []Entry, ok bool) {
	idx := indexOf(list, id)
	if idx < 0 {
		return list, false
	}
	out = append(list[:idx], list[idx+1:]...)
	Renumber(out)
	return out, true
}

// Reorder moves the entry to newIndex, shifting the entries in between and
// leaving the relative order of all others intact. newIndex is clamped to
// the list bounds.
func Reorder(list []Entry, id string, newIndex int) bool {
	idx := indexOf(list, id)
	if idx < 0 {
		return false
	}
	if newIndex < 0 {
		newIndex = 0
	}
	if newIndex > len(list)-1 {
		newIndex = len(list) - 1
	}
	if newIndex == idx {
		return true
	}

	moved := list[idx]
	if newIndex > idx {
		copy(list[idx:], list[idx+1:newIndex+1])
	} else {
		copy(list[newIndex+1:idx+1], list[newIndex:idx])
	}
	list[newIndex] = moved
	for i := range list {
		list[i].Order = i
	}
	return true
}

// ToggleVisibility flips is_visible without touching order.
func ToggleVisibility(list []Entry, id string) bool {
	idx := indexOf(list, id)
	if idx < 0 {
		return false
	}
	list[idx].IsVisible = !list[idx].IsVisible
	return true
}

func indexOf(list []Entry, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}
