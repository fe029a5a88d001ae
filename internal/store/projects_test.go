package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fourcreative/studiodesk/internal/model"
)

func TestAddProjectStartsOwnedListsEmpty(t *testing.T) {
	s := New()
	p := s.AddProject(model.Project{
		Name:     "Spring Campaign",
		ClientID: "1",
		Tasks:    []model.Task{{Title: "smuggled"}},
		Assets:   []string{"smuggled.pdf"},
		Feedback: []model.FeedbackRound{{Comments: "smuggled"}},
	})

	assert.Empty(t, p.Tasks)
	assert.Empty(t, p.Assets)
	assert.Empty(t, p.Feedback)
}

func TestOwnedTaskListsAreIsolated(t *testing.T) {
	s := New()

	// Both projects are created from the same template value.
	template := model.Project{Name: "template", ClientID: "1"}
	a := s.AddProject(template)
	b := s.AddProject(template)

	s.AddTask(a.ID, model.Task{Title: "only on A"})

	gotA, ok := s.Project(a.ID)
	require.True(t, ok)
	gotB, ok := s.Project(b.ID)
	require.True(t, ok)

	require.Len(t, gotA.Tasks, 1)
	assert.Empty(t, gotB.Tasks)
}

func TestReadsReturnCopies(t *testing.T) {
	s := New()
	p := s.AddProject(model.Project{Name: "P"})
	s.AddTask(p.ID, model.Task{Title: "original"})

	// Mutating a read result must not leak into the store.
	read, ok := s.Project(p.ID)
	require.True(t, ok)
	read.Tasks[0].Title = "mutated"
	read.Tasks = append(read.Tasks, model.Task{Title: "extra"})

	again, ok := s.Project(p.ID)
	require.True(t, ok)
	require.Len(t, again.Tasks, 1)
	assert.Equal(t, "original", again.Tasks[0].Title)
}

func TestTaskLifecycle(t *testing.T) {
	s := New()
	p := s.AddProject(model.Project{Name: "P"})

	s.AddTask(p.ID, model.Task{Title: "shoot", Priority: model.PriorityHigh, Subtasks: []model.SubTask{{Title: "smuggled"}}})
	got, _ := s.Project(p.ID)
	require.Len(t, got.Tasks, 1)
	task := got.Tasks[0]
	assert.NotEmpty(t, task.ID)
	assert.Empty(t, task.Subtasks)

	s.UpdateTask(p.ID, task.ID, model.TaskPatch{Completed: ptr(true)})
	got, _ = s.Project(p.ID)
	assert.True(t, got.Tasks[0].Completed)
	assert.Equal(t, "shoot", got.Tasks[0].Title)

	s.DeleteTask(p.ID, task.ID)
	got, _ = s.Project(p.ID)
	assert.Empty(t, got.Tasks)
}

func TestSubTaskLifecycle(t *testing.T) {
	s := New()
	p := s.AddProject(model.Project{Name: "P"})
	s.AddTask(p.ID, model.Task{Title: "parent"})
	taskID := s.Projects()[0].Tasks[0].ID

	s.AddSubTask(p.ID, taskID, model.SubTask{Title: "child"})
	got, _ := s.Project(p.ID)
	require.Len(t, got.Tasks[0].Subtasks, 1)
	subID := got.Tasks[0].Subtasks[0].ID
	require.NotEmpty(t, subID)

	s.UpdateSubTask(p.ID, taskID, subID, model.SubTaskPatch{Completed: ptr(true)})
	got, _ = s.Project(p.ID)
	assert.True(t, got.Tasks[0].Subtasks[0].Completed)
	assert.Equal(t, "child", got.Tasks[0].Subtasks[0].Title)
}

func TestNestedMutationsOnMissingParentsAreNoOps(t *testing.T) {
	s := New()
	p := s.AddProject(model.Project{Name: "P"})
	s.AddTask(p.ID, model.Task{Title: "t"})
	before := s.Projects()

	s.AddTask("missing", model.Task{Title: "lost"})
	s.UpdateTask("missing", "t", model.TaskPatch{Title: ptr("x")})
	s.UpdateTask(p.ID, "missing", model.TaskPatch{Title: ptr("x")})
	s.DeleteTask("missing", "t")
	s.AddSubTask(p.ID, "missing", model.SubTask{Title: "x"})
	s.UpdateSubTask(p.ID, before[0].Tasks[0].ID, "missing", model.SubTaskPatch{Title: ptr("x")})
	s.AddFeedback("missing", model.FeedbackRound{Comments: "x"})

	assert.Equal(t, before, s.Projects())
}

func TestAddFeedbackKeepsCallerVersion(t *testing.T) {
	s := New()
	p := s.AddProject(model.Project{Name: "P"})

	s.AddFeedback(p.ID, model.FeedbackRound{
		Version:  3,
		Author:   "Client",
		Type:     model.FeedbackClient,
		Comments: "warmer palette",
		Status:   model.FeedbackPending,
	})

	got, _ := s.Project(p.ID)
	require.Len(t, got.Feedback, 1)
	assert.NotEmpty(t, got.Feedback[0].ID)
	assert.Equal(t, 3, got.Feedback[0].Version)
}

func TestUpdateProjectIsPartialMerge(t *testing.T) {
	s := New()
	p := s.AddProject(model.Project{
		Name:         "Spring Campaign",
		Client:       "Maison Luxe",
		ClientID:     "1",
		Status:       model.ProjectProduction,
		Phase:        model.PhaseProduction,
		CreativeLead: "Sarah Chen",
		Budget:       model.Budget{Estimated: 25000},
	})

	s.UpdateProject(p.ID, model.ProjectPatch{Status: ptr(model.ProjectLive)})

	got, ok := s.Project(p.ID)
	require.True(t, ok)
	assert.Equal(t, model.ProjectLive, got.Status)
	assert.Equal(t, p.Name, got.Name)
	assert.Equal(t, p.Client, got.Client)
	assert.Equal(t, p.ClientID, got.ClientID)
	assert.Equal(t, p.Phase, got.Phase)
	assert.Equal(t, p.CreativeLead, got.CreativeLead)
	assert.Equal(t, p.Budget, got.Budget)
	assert.Equal(t, p.CreatedAt, got.CreatedAt)
}
