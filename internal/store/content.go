package store

import "github.com/fourcreative/studiodesk/internal/model"

// AddContentItem appends a new content item with zeroed analytics. The
// store never increments analytics itself; callers patch them explicitly.
// Embedded prompts are taken as supplied.
func (s *Store) AddContentItem(ci model.ContentItem) model.ContentItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	ci.ID = newID()
	ci.Analytics = model.Analytics{}
	s.contentItems = append(s.contentItems, cloneContentItem(ci))
	return cloneContentItem(ci)
}

// UpdateContentItem shallow-merges the patch onto the item with the given id
func (s *Store) UpdateContentItem(id string, patch model.ContentItemPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.contentItems {
		if s.contentItems[i].ID == id {
			ci := cloneContentItem(s.contentItems[i])
			patch.Apply(&ci)
			s.contentItems[i] = cloneContentItem(ci)
			return
		}
	}
}

// DeleteContentItem removes the item with the given id
func (s *Store) DeleteContentItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.contentItems[:0]
	for _, ci := range s.contentItems {
		if ci.ID != id {
			kept = append(kept, ci)
		}
	}
	s.contentItems = kept
}

// ContentItems returns every content item in insertion order
func (s *Store) ContentItems() []model.ContentItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.ContentItem, 0, len(s.contentItems))
	for _, ci := range s.contentItems {
		out = append(out, cloneContentItem(ci))
	}
	return out
}

// AddAIPrompt appends a new prompt to the top-level library. The store
// stamps CreatedAt and starts the usage counter at zero.
func (s *Store) AddAIPrompt(ap model.AIPrompt) model.AIPrompt {
	s.mu.Lock()
	defer s.mu.Unlock()

	ap.ID = newID()
	ap.CreatedAt = s.nowFn()
	ap.UsageCount = 0
	s.aiPrompts = append(s.aiPrompts, cloneAIPrompt(ap))
	return cloneAIPrompt(ap)
}

// UpdateAIPrompt shallow-merges the patch onto the prompt with the given id
func (s *Store) UpdateAIPrompt(id string, patch model.AIPromptPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.aiPrompts {
		if s.aiPrompts[i].ID == id {
			ap := cloneAIPrompt(s.aiPrompts[i])
			patch.Apply(&ap)
			s.aiPrompts[i] = cloneAIPrompt(ap)
			return
		}
	}
}

// DeleteAIPrompt removes the prompt with the given id
func (s *Store) DeleteAIPrompt(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.aiPrompts[:0]
	for _, ap := range s.aiPrompts {
		if ap.ID != id {
			kept = append(kept, ap)
		}
	}
	s.aiPrompts = kept
}

// AIPrompts returns every top-level prompt in insertion order
func (s *Store) AIPrompts() []model.AIPrompt {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.AIPrompt, 0, len(s.aiPrompts))
	for _, ap := range s.aiPrompts {
		out = append(out, cloneAIPrompt(ap))
	}
	return out
}
