package store

import (
	"github.com/fourcreative/studiodesk/internal/logger"
	"github.com/fourcreative/studiodesk/internal/model"
)

// AddClient appends a new client. The store assigns ID and CreatedAt;
// everything else is taken as given, duplicates included.
func (s *Store) AddClient(c model.Client) model.Client {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = newID()
	c.CreatedAt = s.nowFn()
	s.clients = append(s.clients, cloneClient(c))
	logger.Debug("client added", logger.F("id", c.ID), logger.F("name", c.Name))
	return cloneClient(c)
}

// UpdateClient shallow-merges the patch onto the client with the given id.
// Unknown ids are ignored.
func (s *Store) UpdateClient(id string, patch model.ClientPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.clients {
		if s.clients[i].ID == id {
			c := cloneClient(s.clients[i])
			patch.Apply(&c)
			s.clients[i] = cloneClient(c)
			return
		}
	}
}

// DeleteClient removes the client and cascades to its projects and
// invoices. The cascade is one level deep: archive items and content that
// reference the client keep their now-dangling soft references.
func (s *Store) DeleteClient(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.clients[:0]
	found := false
	for _, c := range s.clients {
		if c.ID == id {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	s.clients = kept
	if !found {
		return
	}

	projects := s.projects[:0]
	for _, p := range s.projects {
		if p.ClientID != id {
			projects = append(projects, p)
		}
	}
	s.projects = projects

	invoices := s.invoices[:0]
	for _, inv := range s.invoices {
		if inv.ClientID != id {
			invoices = append(invoices, inv)
		}
	}
	s.invoices = invoices

	logger.Info("client deleted with dependents", logger.F("id", id))
}

// Clients returns every client in insertion order
func (s *Store) Clients() []model.Client {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Client, 0, len(s.clients))
	for _, c := range s.clients {
		out = append(out, cloneClient(c))
	}
	return out
}

// Client returns the client with the given id
func (s *Store) Client(id string) (model.Client, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.clients {
		if c.ID == id {
			return cloneClient(c), true
		}
	}
	return model.Client{}, false
}
