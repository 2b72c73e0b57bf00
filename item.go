package tabstrip

// Item is a single selectable entry in the bar. Items are immutable values
// owned by the embedding application; the bar references them by ID, so IDs
// must be non-empty and stable for the lifetime of the item list.
type Item struct {
	ID    string
	Title string
	Icon  string // built-in icon name (see icons.go); empty means no icon
}

// Items is an ordered item list. Insertion order is display order.
type Items []Item

// IndexOf returns the index of the item with the given ID, or -1.
func (items Items) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}
