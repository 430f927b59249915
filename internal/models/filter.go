package models

import (
	"sort"
)

// FilterCriteria selects which catalog items are displayed.
type FilterCriteria struct {
	// Keywords are lower-case tokens; an item matches when its name contains
	// any of them. Empty means no constraint.
	Keywords []string
	// OwnedOnly keeps items with a recorded quantity above zero.
	OwnedOnly bool
	// Section keeps items of this category section; empty means any.
	Section string
	// CategoryName keeps items of this subcategory; empty means any.
	CategoryName string
}

// CategoryIndex maps a category section to the set of subcategory names seen
// in the current catalog.
type CategoryIndex map[string]map[string]struct{}

// Add records a (section, name) pair. Empty sections are ignored and empty
// names only register the section.
func (c CategoryIndex) Add(section, name string) {
	if section == "" {
		return
	}
	names, ok := c[section]
	if !ok {
		names = make(map[string]struct{})
		c[section] = names
	}
	if name != "" {
		names[name] = struct{}{}
	}
}

// Sections returns the sections in alphabetical order.
func (c CategoryIndex) Sections() []string {
	out := make([]string, 0, len(c))
	for s := range c {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Subcategories returns the subcategories of section in alphabetical order.
// An empty section returns the union over all sections.
func (c CategoryIndex) Subcategories(section string) []string {
	seen := make(map[string]struct{})
	if section != "" {
		seen = c[section]
	} else {
		for _, names := range c {
			for n := range names {
				seen[n] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
