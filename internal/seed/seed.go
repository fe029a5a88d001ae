// Package seed provides the fixed dataset the workspace boots with, and a
// loader for supplying an equivalent dataset from a YAML file instead.
package seed

import (
	"time"

	"github.com/fourcreative/studiodesk/internal/model"
	"github.com/fourcreative/studiodesk/internal/store"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dayPtr(s string) *time.Time {
	t := day(s)
	return &t
}

// Default returns the built-in sample workspace: two clients, one project
// in production, an archived moodboard, one paid invoice, running
// expenses, a scheduled content piece, a prompt library entry and two
// playbook sections.
func Default() store.Snapshot {
	return store.Snapshot{
		Clients: []model.Client{
			{
				ID:       "1",
				Name:     "Maison Luxe",
				Industry: "Fashion",
				Status:   model.ClientActive,
				ContactInfo: model.ContactInfo{
					Email:                  "contact@maisonluxe.com",
					Phone:                  "+1 (555) 123-4567",
					Address:                "123 Fashion Ave, New York, NY 10001",
					Timezone:               "EST",
					PreferredCommunication: model.CommEmail,
				},
				OnboardingStage: model.StageProjectStarted,
				Notes: model.ClientNotes{
					LastMeeting: "Discussed spring campaign direction and budget allocation",
					Preferences: "Prefers minimal aesthetic, quick turnarounds, detailed progress updates",
					RedFlags:    "Can be indecisive on final approvals",
					BrandKeywords: []string{
						"luxury", "minimal", "sustainable", "timeless",
					},
				},
				Avatar:       "https://images.pexels.com/photos/1040880/pexels-photo-1040880.jpeg?auto=compress&cs=tinysrgb&w=400",
				CreatedAt:    day("2024-01-01"),
				PortalAccess: true,
			},
			{
				ID:       "2",
				Name:     "Atelier Modern",
				Industry: "Architecture",
				Status:   model.ClientActive,
				ContactInfo: model.ContactInfo{
					Email:                  "hello@ateliermodern.com",
					Phone:                  "+1 (555) 234-5678",
					Address:                "456 Design St, Los Angeles, CA 90210",
					Timezone:               "PST",
					PreferredCommunication: model.CommSlack,
				},
				OnboardingStage: model.StageContractSigned,
				Notes: model.ClientNotes{
					LastMeeting: "Brand identity workshop completed, moving to visual development",
					Preferences: "Values collaborative process, detailed documentation",
					RedFlags:    "Budget conscious, requires multiple rounds of revisions",
					BrandKeywords: []string{
						"modern", "architectural", "clean", "innovative",
					},
				},
				Avatar:       "https://images.pexels.com/photos/1642228/pexels-photo-1642228.jpeg?auto=compress&cs=tinysrgb&w=400",
				CreatedAt:    day("2024-01-05"),
				PortalAccess: true,
			},
		},
		Projects: []model.Project{
			{
				ID:           "1",
				Name:         "Maison Luxe Spring Campaign",
				Client:       "Maison Luxe",
				ClientID:     "1",
				Tags:         []string{"branding", "campaign", "fashion"},
				Status:       model.ProjectProduction,
				Phase:        model.PhaseProduction,
				StartDate:    day("2024-01-01"),
				DueDate:      day("2024-02-15"),
				CreativeLead: "Sarah Chen",
				Budget: model.Budget{
					Estimated: 25000,
					Actual:    18500,
					Breakdown: model.BudgetBreakdown{
						Creative:   12000,
						Tech:       3500,
						Production: 9500,
					},
				},
				Description: "Complete brand campaign for spring collection launch including photography, video, and digital assets.",
				Color:       "bg-blue-500",
				Tasks: []model.Task{
					{
						ID:        "1",
						Title:     "Brand strategy development",
						Completed: true,
						Assignee:  "Sarah Chen",
						DueDate:   day("2024-01-20"),
						Priority:  model.PriorityHigh,
						Subtasks: []model.SubTask{
							{ID: "1", Title: "Market research", Completed: true},
							{ID: "2", Title: "Competitor analysis", Completed: true},
							{ID: "3", Title: "Brand positioning", Completed: true},
						},
						Notes: "Completed ahead of schedule with excellent client feedback",
					},
					{
						ID:        "2",
						Title:     "Visual identity creation",
						Completed: true,
						Assignee:  "Alex Morgan",
						DueDate:   day("2024-01-25"),
						Priority:  model.PriorityCritical,
						Subtasks: []model.SubTask{
							{ID: "1", Title: "Logo concepts", Completed: true},
							{ID: "2", Title: "Color palette", Completed: true},
							{ID: "3", Title: "Typography system", Completed: true},
						},
						Notes: "Three rounds of revisions, final approval received",
					},
					{
						ID:        "3",
						Title:     "Campaign photography",
						Completed: false,
						Assignee:  "Jordan Kim",
						DueDate:   day("2024-02-05"),
						Priority:  model.PriorityHigh,
						Subtasks: []model.SubTask{
							{ID: "1", Title: "Location scouting", Completed: true},
							{ID: "2", Title: "Model casting", Completed: false},
							{ID: "3", Title: "Shoot execution", Completed: false},
						},
						Notes: "Waiting for final model selection from client",
					},
				},
				Assets: []string{"brand-guidelines.pdf", "logo-variations.zip", "color-palette.ai"},
				Feedback: []model.FeedbackRound{
					{
						ID:          "1",
						Version:     1,
						Date:        day("2024-01-22"),
						Author:      "Client",
						Type:        model.FeedbackClient,
						Comments:    "Love the direction, can we explore a warmer color palette?",
						Status:      model.FeedbackAddressed,
						Attachments: []string{"feedback-v1.pdf"},
					},
				},
				CreatedAt: day("2024-01-01"),
			},
		},
		ArchiveItems: []model.ArchiveItem{
			{
				ID:          "1",
				Title:       "Luxury Fashion Moodboard",
				Type:        model.ArchiveMoodboard,
				Folder:      "Campaigns/Maison Luxe",
				Tags:        []string{"luxury", "fashion", "minimal", "spring"},
				Date:        day("2024-01-15"),
				Thumbnail:   "https://images.pexels.com/photos/1337380/pexels-photo-1337380.jpeg?auto=compress&cs=tinysrgb&w=400",
				FileURL:     "https://example.com/moodboard.pdf",
				Description: "Visual direction for Maison Luxe spring campaign",
				ProjectID:   "1",
				ClientID:    "1",
				Versions: []model.ArchiveVersion{
					{
						ID:      "1",
						Version: 1,
						Date:    day("2024-01-15"),
						Author:  "Sarah Chen",
						Changes: "Initial version",
						FileURL: "https://example.com/moodboard-v1.pdf",
					},
				},
				Views: 245,
				Likes: 18,
			},
		},
		Invoices: []model.Invoice{
			{
				ID:            "INV-001",
				Client:        "Maison Luxe",
				ClientID:      "1",
				ProjectID:     "1",
				Amount:        25000,
				Status:        model.InvoicePaid,
				Date:          day("2024-01-15"),
				DueDate:       day("2024-02-15"),
				Template:      model.TemplateMilestone,
				PaymentMethod: "Wire Transfer",
				PaidDate:      dayPtr("2024-01-20"),
				Items: []model.InvoiceItem{
					{ID: "1", Description: "Brand Strategy Development", Quantity: 1, Rate: 8000, Amount: 8000, Category: model.LineCreative},
					{ID: "2", Description: "Visual Identity Design", Quantity: 1, Rate: 12000, Amount: 12000, Category: model.LineCreative},
					{ID: "3", Description: "Brand Guidelines Documentation", Quantity: 1, Rate: 5000, Amount: 5000, Category: model.LineCreative},
				},
				Notes: "Payment received on time. Excellent client relationship.",
			},
		},
		Expenses: []model.Expense{
			{
				ID:          "1",
				Description: "Adobe Creative Suite",
				Amount:      599,
				Category:    model.ExpenseSoftware,
				Date:        day("2024-01-01"),
				Recurring:   true,
				Vendor:      "Adobe",
				Receipt:     "receipt-adobe.pdf",
			},
			{
				ID:          "2",
				Description: "Photography Equipment",
				Amount:      2500,
				Category:    model.ExpenseHardware,
				Date:        day("2024-01-10"),
				Recurring:   false,
				Vendor:      "B&H Photo",
				ProjectID:   "1",
				Receipt:     "receipt-camera.pdf",
			},
		},
		ContentItems: []model.ContentItem{
			{
				ID:            "1",
				Title:         "Maison Luxe Campaign Teaser",
				Type:          model.ContentVideo,
				Status:        model.ContentReview,
				ScheduledDate: dayPtr("2024-02-01"),
				Platform:      []string{"Instagram", "TikTok"},
				Script: model.Script{
					Content: "Luxury redefined. Spring collection drops February 15th.",
					Versions: []model.ContentVersion{
						{
							ID:       "1",
							Version:  1,
							Content:  "Luxury redefined. Spring collection drops February 15th.",
							Date:     day("2024-01-20"),
							Author:   "Sarah Chen",
							Feedback: "Initial draft",
						},
					},
				},
				Visual: model.Visual{
					Thumbnail: "https://images.pexels.com/photos/1667071/pexels-photo-1667071.jpeg?auto=compress&cs=tinysrgb&w=400",
					Assets:    []string{"teaser-video.mp4", "thumbnail.jpg"},
				},
				CTA:       "Shop Now",
				Assignee:  "Jordan Kim",
				ProjectID: "1",
				AIPrompts: []model.AIPrompt{
					{
						ID:         "1",
						Title:      "Luxury Fashion Video Concept",
						Type:       model.PromptSora,
						Prompt:     "Cinematic luxury fashion video, minimal aesthetic, soft lighting, model in flowing fabric",
						Tags:       []string{"luxury", "fashion", "cinematic"},
						Category:   model.PromptVideo,
						Results:    []string{"video-concept-1.mp4"},
						CreatedAt:  day("2024-01-18"),
						UsageCount: 3,
					},
				},
			},
		},
		AIPrompts: []model.AIPrompt{
			{
				ID:         "1",
				Title:      "Luxury Brand Voice",
				Type:       model.PromptGPT,
				Prompt:     "Write in the voice of a luxury fashion brand: sophisticated, minimal, aspirational but not pretentious",
				Tags:       []string{"luxury", "fashion", "copywriting"},
				Category:   model.PromptCopy,
				Results:    []string{"Luxury redefined for the modern connoisseur..."},
				CreatedAt:  day("2024-01-15"),
				UsageCount: 12,
			},
		},
		PlaybookSections: []model.PlaybookSection{
			{
				ID:       "1",
				Title:    "FOUR Brand Voice & Tone",
				Category: model.PlaybookBrandBible,
				Content: `# FOUR Brand Voice

## Voice Characteristics
- **Sophisticated**: We speak with authority and expertise
- **Minimal**: Every word has purpose and meaning
- **Cinematic**: Our language creates visual experiences
- **Authentic**: We never compromise our values for trends

## Tone Guidelines
- **Professional**: Always maintain high standards
- **Approachable**: Luxury shouldn't feel intimidating
- **Confident**: We know our craft and value
- **Thoughtful**: Every communication is intentional`,
				LastUpdated: day("2024-01-15"),
				Author:      "Sarah Chen",
				Attachments: []string{"brand-voice-examples.pdf"},
				Tags:        []string{"brand", "voice", "tone", "guidelines"},
				Version:     2,
			},
			{
				ID:       "2",
				Title:    "Client Onboarding Process",
				Category: model.PlaybookOperatingSystem,
				Content: `# Client Onboarding Workflow

## Phase 1: Initial Contact
1. Respond within 2 hours during business hours
2. Schedule discovery call within 48 hours
3. Send welcome packet with portfolio and process overview

## Phase 2: Discovery & Proposal
1. Conduct 60-minute discovery session
2. Create detailed project brief
3. Develop custom proposal within 5 business days

## Phase 3: Contract & Kickoff
1. Send contract within 24 hours of approval
2. Collect 50% deposit before work begins
3. Schedule kickoff meeting and grant portal access`,
				LastUpdated: day("2024-01-12"),
				Author:      "Alex Morgan",
				Attachments: []string{"onboarding-checklist.pdf", "contract-template.docx"},
				Tags:        []string{"onboarding", "process", "workflow"},
				Version:     1,
			},
		},
	}
}
