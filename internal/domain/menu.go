package domain

// MenuItem is a sidebar navigation entry. Children may nest arbitrarily,
// although the built-in menus only use one level.
type MenuItem struct {
	ID       string     `json:"id"`
	Label    string     `json:"label"`
	Icon     string     `json:"icon"`
	Route    string     `json:"route"`
	Children []MenuItem `json:"children,omitempty"`
	Expanded bool       `json:"expanded,omitempty"`
}

// HasChildren reports whether clicking the item toggles instead of navigating.
func (m MenuItem) HasChildren() bool {
	return len(m.Children) > 0
}
