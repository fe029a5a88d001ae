package store

import "github.com/fourcreative/studiodesk/internal/model"

// Clone helpers keep every read and write a deep copy, so no two records
// ever share an owned slice.

func cloneClient(c model.Client) model.Client {
	cp := c
	cp.Notes.BrandKeywords = append([]string(nil), c.Notes.BrandKeywords...)
	return cp
}

func cloneTask(t model.Task) model.Task {
	cp := t
	cp.Subtasks = append([]model.SubTask(nil), t.Subtasks...)
	return cp
}

func cloneFeedback(f model.FeedbackRound) model.FeedbackRound {
	cp := f
	cp.Attachments = append([]string(nil), f.Attachments...)
	return cp
}

func cloneProject(p model.Project) model.Project {
	cp := p
	cp.Tags = append([]string(nil), p.Tags...)
	cp.Assets = append([]string(nil), p.Assets...)
	cp.Tasks = make([]model.Task, 0, len(p.Tasks))
	for _, t := range p.Tasks {
		cp.Tasks = append(cp.Tasks, cloneTask(t))
	}
	cp.Feedback = make([]model.FeedbackRound, 0, len(p.Feedback))
	for _, f := range p.Feedback {
		cp.Feedback = append(cp.Feedback, cloneFeedback(f))
	}
	return cp
}

func cloneArchiveItem(a model.ArchiveItem) model.ArchiveItem {
	cp := a
	cp.Tags = append([]string(nil), a.Tags...)
	cp.Versions = append([]model.ArchiveVersion(nil), a.Versions...)
	return cp
}

func cloneInvoice(inv model.Invoice) model.Invoice {
	cp := inv
	cp.Items = append([]model.InvoiceItem(nil), inv.Items...)
	if inv.PaidDate != nil {
		d := *inv.PaidDate
		cp.PaidDate = &d
	}
	return cp
}

func cloneAIPrompt(ap model.AIPrompt) model.AIPrompt {
	cp := ap
	cp.Tags = append([]string(nil), ap.Tags...)
	cp.Results = append([]string(nil), ap.Results...)
	return cp
}

func cloneContentItem(ci model.ContentItem) model.ContentItem {
	cp := ci
	if ci.ScheduledDate != nil {
		d := *ci.ScheduledDate
		cp.ScheduledDate = &d
	}
	if ci.PublishedDate != nil {
		d := *ci.PublishedDate
		cp.PublishedDate = &d
	}
	cp.Platform = append([]string(nil), ci.Platform...)
	cp.Script.Versions = append([]model.ContentVersion(nil), ci.Script.Versions...)
	cp.Visual.Assets = append([]string(nil), ci.Visual.Assets...)
	cp.AIPrompts = make([]model.AIPrompt, 0, len(ci.AIPrompts))
	for _, ap := range ci.AIPrompts {
		cp.AIPrompts = append(cp.AIPrompts, cloneAIPrompt(ap))
	}
	return cp
}

func clonePlaybookSection(ps model.PlaybookSection) model.PlaybookSection {
	cp := ps
	cp.Attachments = append([]string(nil), ps.Attachments...)
	cp.Tags = append([]string(nil), ps.Tags...)
	return cp
}
