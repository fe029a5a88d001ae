package store

import "github.com/fourcreative/studiodesk/internal/model"

// AddPlaybookSection appends a new wiki section at version 1 with
// LastUpdated stamped to now.
func (s *Store) AddPlaybookSection(ps model.PlaybookSection) model.PlaybookSection {
	s.mu.Lock()
	defer s.mu.Unlock()

	ps.ID = newID()
	ps.LastUpdated = s.nowFn()
	ps.Version = 1
	s.playbook = append(s.playbook, clonePlaybookSection(ps))
	return clonePlaybookSection(ps)
}

// UpdatePlaybookSection shallow-merges the patch, restamps LastUpdated and
// bumps the version by one, even when the patch is empty.
func (s *Store) UpdatePlaybookSection(id string, patch model.PlaybookSectionPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.playbook {
		if s.playbook[i].ID == id {
			ps := clonePlaybookSection(s.playbook[i])
			patch.Apply(&ps)
			ps.LastUpdated = s.nowFn()
			ps.Version++
			s.playbook[i] = clonePlaybookSection(ps)
			return
		}
	}
}

// DeletePlaybookSection removes the section with the given id
func (s *Store) DeletePlaybookSection(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.playbook[:0]
	for _, ps := range s.playbook {
		if ps.ID != id {
			kept = append(kept, ps)
		}
	}
	s.playbook = kept
}

// PlaybookSections returns every section in insertion order
func (s *Store) PlaybookSections() []model.PlaybookSection {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.PlaybookSection, 0, len(s.playbook))
	for _, ps := range s.playbook {
		out = append(out, clonePlaybookSection(ps))
	}
	return out
}

// PlaybookSection returns the section with the given id
func (s *Store) PlaybookSection(id string) (model.PlaybookSection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ps := range s.playbook {
		if ps.ID == id {
			return clonePlaybookSection(ps), true
		}
	}
	return model.PlaybookSection{}, false
}
