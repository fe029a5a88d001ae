package store

import "github.com/fourcreative/studiodesk/internal/model"

// AddArchiveItem appends a new archive item. Counters start at zero and
// the version history starts empty.
func (s *Store) AddArchiveItem(a model.ArchiveItem) model.ArchiveItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = newID()
	a.Views = 0
	a.Likes = 0
	a.Versions = []model.ArchiveVersion{}
	s.archiveItems = append(s.archiveItems, cloneArchiveItem(a))
	return cloneArchiveItem(a)
}

// UpdateArchiveItem shallow-merges the patch onto the item with the given id
func (s *Store) UpdateArchiveItem(id string, patch model.ArchiveItemPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.archiveItems {
		if s.archiveItems[i].ID == id {
			a := cloneArchiveItem(s.archiveItems[i])
			patch.Apply(&a)
			s.archiveItems[i] = cloneArchiveItem(a)
			return
		}
	}
}

// DeleteArchiveItem removes the item with the given id
func (s *Store) DeleteArchiveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.archiveItems[:0]
	for _, a := range s.archiveItems {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.archiveItems = kept
}

// LikeArchiveItem increments the like counter by one. Views are untouched.
func (s *Store) LikeArchiveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.archiveItems {
		if s.archiveItems[i].ID == id {
			s.archiveItems[i].Likes++
			return
		}
	}
}

// AddArchiveVersion appends a revision to the item's owned version list
func (s *Store) AddArchiveVersion(itemID string, v model.ArchiveVersion) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.archiveItems {
		if s.archiveItems[i].ID == itemID {
			v.ID = newID()
			s.archiveItems[i].Versions = append(s.archiveItems[i].Versions, v)
			return
		}
	}
}

// ArchiveItems returns every archive item in insertion order
func (s *Store) ArchiveItems() []model.ArchiveItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.ArchiveItem, 0, len(s.archiveItems))
	for _, a := range s.archiveItems {
		out = append(out, cloneArchiveItem(a))
	}
	return out
}

// ArchiveItem returns the item with the given id
func (s *Store) ArchiveItem(id string) (model.ArchiveItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.archiveItems {
		if a.ID == id {
			return cloneArchiveItem(a), true
		}
	}
	return model.ArchiveItem{}, false
}
