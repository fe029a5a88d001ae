package store

import (
	"github.com/fourcreative/studiodesk/internal/logger"
	"github.com/fourcreative/studiodesk/internal/model"
)

// AddProject appends a new project. The store assigns ID and CreatedAt and
// starts the owned lists (tasks, assets, feedback) empty. The client
// reference is not validated.
func (s *Store) AddProject(p model.Project) model.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = newID()
	p.CreatedAt = s.nowFn()
	p.Tasks = []model.Task{}
	p.Assets = []string{}
	p.Feedback = []model.FeedbackRound{}
	s.projects = append(s.projects, cloneProject(p))
	logger.Debug("project added", logger.F("id", p.ID), logger.F("client_id", p.ClientID))
	return cloneProject(p)
}

// UpdateProject shallow-merges the patch onto the project with the given id
func (s *Store) UpdateProject(id string, patch model.ProjectPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID == id {
			p := cloneProject(s.projects[i])
			patch.Apply(&p)
			s.projects[i] = cloneProject(p)
			return
		}
	}
}

// DeleteProject removes a project. No cascade: archive items, content and
// invoices that reference it keep their soft references.
func (s *Store) DeleteProject(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.projects[:0]
	for _, p := range s.projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.projects = kept
}

// Projects returns every project in insertion order
func (s *Store) Projects() []model.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, cloneProject(p))
	}
	return out
}

// Project returns the project with the given id
func (s *Store) Project(id string) (model.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.projects {
		if p.ID == id {
			return cloneProject(p), true
		}
	}
	return model.Project{}, false
}

// AddTask appends a task to the project's owned list. The store assigns
// the task ID and starts its subtask list empty. Unknown projects are
// ignored.
func (s *Store) AddTask(projectID string, t model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID == projectID {
			t.ID = newID()
			t.Subtasks = []model.SubTask{}
			s.projects[i].Tasks = append(s.projects[i].Tasks, cloneTask(t))
			return
		}
	}
}

// UpdateTask shallow-merges the patch onto a task inside its project
func (s *Store) UpdateTask(projectID, taskID string, patch model.TaskPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID != projectID {
			continue
		}
		for j := range s.projects[i].Tasks {
			if s.projects[i].Tasks[j].ID == taskID {
				patch.Apply(&s.projects[i].Tasks[j])
				return
			}
		}
		return
	}
}

// DeleteTask removes a task from its project's owned list
func (s *Store) DeleteTask(projectID, taskID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID != projectID {
			continue
		}
		kept := s.projects[i].Tasks[:0]
		for _, t := range s.projects[i].Tasks {
			if t.ID != taskID {
				kept = append(kept, t)
			}
		}
		s.projects[i].Tasks = kept
		return
	}
}

// AddSubTask appends a subtask to a task's owned list
func (s *Store) AddSubTask(projectID, taskID string, st model.SubTask) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID != projectID {
			continue
		}
		for j := range s.projects[i].Tasks {
			if s.projects[i].Tasks[j].ID == taskID {
				st.ID = newID()
				s.projects[i].Tasks[j].Subtasks = append(s.projects[i].Tasks[j].Subtasks, st)
				return
			}
		}
		return
	}
}

// UpdateSubTask shallow-merges the patch onto a subtask
func (s *Store) UpdateSubTask(projectID, taskID, subtaskID string, patch model.SubTaskPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID != projectID {
			continue
		}
		for j := range s.projects[i].Tasks {
			if s.projects[i].Tasks[j].ID != taskID {
				continue
			}
			for k := range s.projects[i].Tasks[j].Subtasks {
				if s.projects[i].Tasks[j].Subtasks[k].ID == subtaskID {
					patch.Apply(&s.projects[i].Tasks[j].Subtasks[k])
					return
				}
			}
			return
		}
		return
	}
}

// AddFeedback appends a feedback round to the project's owned list. The
// caller supplies the round version; the store only assigns the ID.
func (s *Store) AddFeedback(projectID string, f model.FeedbackRound) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID == projectID {
			f.ID = newID()
			s.projects[i].Feedback = append(s.projects[i].Feedback, cloneFeedback(f))
			logger.Debug("feedback recorded", logger.F("project_id", projectID), logger.F("version", f.Version))
			return
		}
	}
}
