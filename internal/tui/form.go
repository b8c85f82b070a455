package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/reportdesk/internal/models"
)

type formField int

const (
	fieldTitle formField = iota
	fieldDescription
	fieldStatus
)

// formModel is the create/edit dialog. An empty editingID means the form
// creates a new report; otherwise it edits the report with that id, whose
// creation date is never touched.
type formModel struct {
	editingID   string
	title       textinput.Model
	description textarea.Model
	status      models.Status
	focus       formField
}

func newFormModel(r *models.Report) formModel {
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 200
	title.Width = 48

	description := textarea.New()
	description.Placeholder = "Description"
	description.CharLimit = 0
	description.SetWidth(48)
	description.SetHeight(4)
	description.ShowLineNumbers = false

	f := formModel{
		title:       title,
		description: description,
		status:      models.StatusActive,
	}

	if r != nil {
		f.editingID = r.Id
		f.title.SetValue(r.Title)
		f.description.SetValue(r.Description)
		f.status = r.Status
	}

	f.title.Focus()
	return f
}

func (f formModel) isEdit() bool { return f.editingID != "" }

func (f *formModel) focusField(field formField) tea.Cmd {
	f.focus = field
	f.title.Blur()
	f.description.Blur()
	switch field {
	case fieldTitle:
		return f.title.Focus()
	case fieldDescription:
		return f.description.Focus()
	}
	return nil
}

func (f *formModel) nextField() tea.Cmd {
	return f.focusField((f.focus + 1) % 3)
}

func (f *formModel) prevField() tea.Cmd {
	return f.focusField((f.focus + 2) % 3)
}

func (f *formModel) toggleStatus() {
	if f.status == models.StatusActive {
		f.status = models.StatusArchived
	} else {
		f.status = models.StatusActive
	}
}

// update routes input to the focused field.
func (f formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
	var cmd tea.Cmd
	switch f.focus {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldDescription:
		f.description, cmd = f.description.Update(msg)
	case fieldStatus:
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "left", "right", " ":
				f.toggleStatus()
			}
		}
	}
	return f, cmd
}
