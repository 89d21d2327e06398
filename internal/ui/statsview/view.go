package statsview

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"studydesk/internal/core/model"
)

// View is the dashboard stats card.
type View struct {
	card       *widget.Card
	message    *widget.Label
	tasks      *widget.Label
	notes      *widget.Label
	guides     *widget.Label
	completion *widget.ProgressBar
	details    *fyne.Container
}

// New builds an empty stats card in the signed-out state.
func New() *View {
	view := &View{
		message:    widget.NewLabel(""),
		tasks:      widget.NewLabel(""),
		notes:      widget.NewLabel(""),
		guides:     widget.NewLabel(""),
		completion: widget.NewProgressBar(),
	}
	view.message.Wrapping = fyne.TextWrapWord
	view.completion.TextFormatter = func() string {
		return fmt.Sprintf("%d%% of tasks done", int(view.completion.Value*100+0.5))
	}
	view.details = container.NewVBox(view.tasks, view.notes, view.guides, view.completion)
	view.card = widget.NewCard("Your progress", "", container.NewVBox(view.message, view.details))
	view.ShowSignedOut()
	return view
}

// Content returns the root canvas object.
func (view *View) Content() fyne.CanvasObject {
	return view.card
}

// Show renders stats for the signed-in user.
func (view *View) Show(user *model.User, stats model.Stats) {
	if user != nil {
		view.card.SetSubTitle(user.Name)
	}
	view.message.SetText("")
	view.message.Hide()
	view.tasks.SetText(TasksLine(stats))
	view.notes.SetText(fmt.Sprintf("Notes: %d", stats.TotalNotes))
	view.guides.SetText(fmt.Sprintf("Learning guides: %d", stats.AILearnings))
	view.completion.SetValue(float64(stats.CompletionRate()) / 100)
	view.details.Show()
}

// ShowSignedOut hides the stats and prompts to sign in.
func (view *View) ShowSignedOut() {
	view.card.SetSubTitle("")
	view.showMessage("Sign in with `studydesk login` to see your tasks and notes.")
}

// ShowError reports a failed refresh.
func (view *View) ShowError(err error) {
	view.showMessage(fmt.Sprintf("Could not load stats: %v", err))
}

func (view *View) showMessage(text string) {
	view.message.SetText(text)
	view.message.Show()
	view.details.Hide()
}

// TasksLine summarises task counts.
func TasksLine(stats model.Stats) string {
	return fmt.Sprintf("Tasks: %d total, %d completed, %d pending", stats.TotalTasks, stats.CompletedTasks, stats.PendingTasks)
}
