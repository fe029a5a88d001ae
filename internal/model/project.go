package model

import "time"

// ProjectStatus follows the studio pipeline from concept to handoff
type ProjectStatus string

const (
	ProjectConcept    ProjectStatus = "Concept"
	ProjectStrategy   ProjectStatus = "Strategy"
	ProjectDesign     ProjectStatus = "Design"
	ProjectProduction ProjectStatus = "Production"
	ProjectHandoff    ProjectStatus = "Handoff"
	ProjectLive       ProjectStatus = "Live"
	ProjectArchived   ProjectStatus = "Archived"
)

// ProjectPhase is the delivery phase a project is currently in
type ProjectPhase string

const (
	PhaseBrief      ProjectPhase = "Brief"
	PhaseStrategy   ProjectPhase = "Strategy"
	PhaseDesign     ProjectPhase = "Design"
	PhaseProduction ProjectPhase = "Production"
	PhaseHandoff    ProjectPhase = "Handoff"
)

// TaskPriority levels for project tasks
type TaskPriority string

const (
	PriorityLow      TaskPriority = "Low"
	PriorityMedium   TaskPriority = "Medium"
	PriorityHigh     TaskPriority = "High"
	PriorityCritical TaskPriority = "Critical"
)

// FeedbackType distinguishes internal review from client review
type FeedbackType string

const (
	FeedbackInternal FeedbackType = "Internal"
	FeedbackClient   FeedbackType = "Client"
)

// FeedbackStatus tracks whether a round of notes has been acted on
type FeedbackStatus string

const (
	FeedbackPending   FeedbackStatus = "Pending"
	FeedbackAddressed FeedbackStatus = "Addressed"
	FeedbackApproved  FeedbackStatus = "Approved"
)

// BudgetBreakdown splits a budget across delivery categories
type BudgetBreakdown struct {
	Creative   float64 `json:"creative" yaml:"creative"`
	Tech       float64 `json:"tech" yaml:"tech"`
	Production float64 `json:"production" yaml:"production"`
}

// Budget holds estimated vs actual spend for a project
type Budget struct {
	Estimated float64         `json:"estimated" yaml:"estimated"`
	Actual    float64         `json:"actual" yaml:"actual"`
	Breakdown BudgetBreakdown `json:"breakdown" yaml:"breakdown"`
}

// SubTask is a checklist entry owned by a Task
type SubTask struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// Task is a unit of work owned by exactly one Project
type Task struct {
	ID        string       `json:"id" yaml:"id"`
	Title     string       `json:"title" yaml:"title"`
	Completed bool         `json:"completed" yaml:"completed"`
	Assignee  string       `json:"assignee" yaml:"assignee"`
	DueDate   time.Time    `json:"due_date" yaml:"due_date"`
	Priority  TaskPriority `json:"priority" yaml:"priority"`
	Subtasks  []SubTask    `json:"subtasks" yaml:"subtasks"`
	Notes     string       `json:"notes" yaml:"notes"`
}

// FeedbackRound records one round of review notes on a Project
type FeedbackRound struct {
	ID          string         `json:"id" yaml:"id"`
	Version     int            `json:"version" yaml:"version"`
	Date        time.Time      `json:"date" yaml:"date"`
	Author      string         `json:"author" yaml:"author"`
	Type        FeedbackType   `json:"type" yaml:"type"`
	Comments    string         `json:"comments" yaml:"comments"`
	Status      FeedbackStatus `json:"status" yaml:"status"`
	Attachments []string       `json:"attachments" yaml:"attachments"`
}

// Project represents a client engagement. Tasks, assets and feedback are
// exclusively owned by the project; nothing else references them.
type Project struct {
	ID           string          `json:"id" yaml:"id"`
	Name         string          `json:"name" yaml:"name"`
	Client       string          `json:"client" yaml:"client"`
	ClientID     string          `json:"client_id" yaml:"client_id"`
	Tags         []string        `json:"tags" yaml:"tags"`
	Status       ProjectStatus   `json:"status" yaml:"status"`
	Phase        ProjectPhase    `json:"phase" yaml:"phase"`
	StartDate    time.Time       `json:"start_date" yaml:"start_date"`
	DueDate      time.Time       `json:"due_date" yaml:"due_date"`
	CreativeLead string          `json:"creative_lead" yaml:"creative_lead"`
	Budget       Budget          `json:"budget" yaml:"budget"`
	Description  string          `json:"description" yaml:"description"`
	Color        string          `json:"color" yaml:"color"`
	Tasks        []Task          `json:"tasks" yaml:"tasks"`
	Assets       []string        `json:"assets" yaml:"assets"`
	Feedback     []FeedbackRound `json:"feedback" yaml:"feedback"`
	CreatedAt    time.Time       `json:"created_at" yaml:"created_at"`
}

// ProjectPatch is a partial update for a Project. Owned lists (tasks,
// feedback) are mutated through the store's nested operations, not patched.
type ProjectPatch struct {
	Name         *string
	Client       *string
	ClientID     *string
	Tags         *[]string
	Status       *ProjectStatus
	Phase        *ProjectPhase
	StartDate    *time.Time
	DueDate      *time.Time
	CreativeLead *string
	Budget       *Budget
	Description  *string
	Color        *string
	Assets       *[]string
}

// Apply merges the patch onto p
func (pp ProjectPatch) Apply(p *Project) {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.Client != nil {
		p.Client = *pp.Client
	}
	if pp.ClientID != nil {
		p.ClientID = *pp.ClientID
	}
	if pp.Tags != nil {
		p.Tags = append([]string(nil), (*pp.Tags)...)
	}
	if pp.Status != nil {
		p.Status = *pp.Status
	}
	if pp.Phase != nil {
		p.Phase = *pp.Phase
	}
	if pp.StartDate != nil {
		p.StartDate = *pp.StartDate
	}
	if pp.DueDate != nil {
		p.DueDate = *pp.DueDate
	}
	if pp.CreativeLead != nil {
		p.CreativeLead = *pp.CreativeLead
	}
	if pp.Budget != nil {
		p.Budget = *pp.Budget
	}
	if pp.Description != nil {
		p.Description = *pp.Description
	}
	if pp.Color != nil {
		p.Color = *pp.Color
	}
	if pp.Assets != nil {
		p.Assets = append([]string(nil), (*pp.Assets)...)
	}
}

// TaskPatch is a partial update for a Task within a project
type TaskPatch struct {
	Title     *string
	Completed *bool
	Assignee  *string
	DueDate   *time.Time
	Priority  *TaskPriority
	Notes     *string
}

// Apply merges the patch onto t
func (tp TaskPatch) Apply(t *Task) {
	if tp.Title != nil {
		t.Title = *tp.Title
	}
	if tp.Completed != nil {
		t.Completed = *tp.Completed
	}
	if tp.Assignee != nil {
		t.Assignee = *tp.Assignee
	}
	if tp.DueDate != nil {
		t.DueDate = *tp.DueDate
	}
	if tp.Priority != nil {
		t.Priority = *tp.Priority
	}
	if tp.Notes != nil {
		t.Notes = *tp.Notes
	}
}

// SubTaskPatch is a partial update for a SubTask
type SubTaskPatch struct {
	Title     *string
	Completed *bool
}

// Apply merges the patch onto st
func (sp SubTaskPatch) Apply(st *SubTask) {
	if sp.Title != nil {
		st.Title = *sp.Title
	}
	if sp.Completed != nil {
		st.Completed = *sp.Completed
	}
}
