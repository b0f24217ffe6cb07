// Package enquiry maintains the per-visitor enquiry list: products a visitor
// batches up before sending one enquiry.
package enquiry

import "slices"

// Item is one line of an enquiry list.
type Item struct {
	// ID keys the line; re-adding the same id merges quantities.
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Quantity  int      `json:"quantity"`
	Price     *float64 `json:"price,omitempty"`
	Image     string   `json:"image,omitempty"`
	ProductID string   `json:"product_id,omitempty"`
}

// List is an ordered enquiry list. The zero value is empty and ready to use.
type List struct {
	items []Item
}

// NewList builds a list from stored items, merging duplicate ids.
func NewList(items []Item) List {
	var l List
	for _, item := range items {
		l.Add(item)
	}
	return l
}

// Items returns a copy of the list lines in insertion order.
func (l List) Items() []Item {
	if len(l.items) == 0 {
		return []Item{}
	}
	return slices.Clone(l.items)
}

// Add appends item or, when its id is already present, increases that line's
// quantity. Quantities below one count as one.
func (l *List) Add(item Item) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	if idx := l.index(item.ID); idx >= 0 {
		l.items[idx].Quantity += item.Quantity
		return
	}
	l.items = append(l.items, item)
}

// Remove drops the line with id. Unknown ids are ignored.
func (l *List) Remove(id string) {
	if idx := l.index(id); idx >= 0 {
		l.items = slices.Delete(l.items, idx, idx+1)
	}
}

// UpdateQuantity sets a line's quantity; zero or less removes it. Unknown ids
// are ignored.
func (l *List) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		l.Remove(id)
		return
	}
	if idx := l.index(id); idx >= 0 {
		l.items[idx].Quantity = quantity
	}
}

// Clear empties the list.
func (l *List) Clear() {
	l.items = nil
}

// TotalItems sums quantities across all lines.
func (l List) TotalItems() int {
	total := 0
	for _, item := range l.items {
		total += item.Quantity
	}
	return total
}

// Quantity returns the quantity of the line with id, or zero when absent.
func (l List) Quantity(id string) int {
	if idx := l.index(id); idx >= 0 {
		return l.items[idx].Quantity
	}
	return 0
}

func (l List) index(id string) int {
	return slices.IndexFunc(l.items, func(item Item) bool { return item.ID == id })
}
