package model

import "sort"

// Selection is the set of employee ids ticked on the list page.
type Selection struct {
	ids map[string]struct{}
}

func NewSelection() *Selection {
	return &Selection{ids: make(map[string]struct{})}
}

// SelectAll ticks every id when checked is true, otherwise clears the set.
func (s *Selection) SelectAll(ids []string, checked bool) {
	if !checked {
		s.Clear()
		return
	}
	for _, id := range ids {
		if id != "" {
			s.ids[id] = struct{}{}
		}
	}
}

func (s *Selection) SelectOne(id string, checked bool) {
	if id == "" {
		return
	}
	if checked {
		s.ids[id] = struct{}{}
	} else {
		delete(s.ids, id)
	}
}

// Toggle flips id and returns its new state.
func (s *Selection) Toggle(id string) bool {
	checked := !s.Has(id)
	s.SelectOne(id, checked)
	return checked && id != ""
}

func (s *Selection) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *Selection) Len() int {
	return len(s.ids)
}

// IDs returns the selected ids sorted.
func (s *Selection) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (s *Selection) Clear() {
	s.ids = make(map[string]struct{})
}

// Retain drops every selected id that is not in ids.
func (s *Selection) Retain(ids []string) {
	keep := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if s.Has(id) {
			keep[id] = struct{}{}
		}
	}
	s.ids = keep
}

// AllSelected is true when a non-empty list of n rows is fully ticked.
func (s *Selection) AllSelected(n int) bool {
	return n > 0 && s.Len() == n
}

// SomeSelected is true for a partial selection.
func (s *Selection) SomeSelected(n int) bool {
	return s.Len() > 0 && s.Len() < n
}
