package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wandertools/wandertools/internal/feedback"
)

const (
	dialogTitle    = "Feedback"
	dialogSubtitle = "Share your ideas, suggestions or remarks."

	statusSending = "Sending..."
	statusSent    = "✅ Feedback sent"
	statusError   = "❌ Something went wrong"
)

func (a *App) dialogOpen() bool {
	return a.active != nil && a.active.Visible()
}

// dialogFor returns the session dialog for appName, creating it on first use.
func (a *App) dialogFor(appName string) (*feedback.Dialog, error) {
	if d, ok := a.dialogs[appName]; ok {
		return d, nil
	}
	d, err := feedback.NewDialog(appName, a.services.Sender,
		feedback.WithLogger(a.logger.With().Str("component", "feedback").Logger()),
		feedback.WithObserver(a.services.Observer),
	)
	if err != nil {
		return nil, err
	}
	a.dialogs[appName] = d
	return d, nil
}

func (a *App) openDialog(appName string) tea.Cmd {
	d, err := a.dialogFor(appName)
	if err != nil {
		a.status = "error: " + err.Error()
		return nil
	}
	d.Open()
	a.active = d
	a.hint = ""
	a.input.SetValue(d.Controller().Text())
	a.input.CursorEnd()
	return a.input.Focus()
}

func (a *App) closeDialog() {
	if a.active == nil {
		return
	}
	a.active.Controller().SetText(a.input.Value())
	a.active.Close()
	a.input.Blur()
	a.hint = ""
}

func (a *App) handleDialogKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.Type == tea.KeyCtrlC:
		return a, tea.Quit
	case key.Matches(m, a.keys.Close):
		if a.active.CanClose() {
			a.closeDialog()
		}
		return a, nil
	case key.Matches(m, a.keys.Send):
		return a, a.submitCmd()
	}
	if a.active.Controller().Status() == feedback.Sending {
		return a, nil
	}
	a.hint = ""
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(m)
	a.active.Controller().SetText(a.input.Value())
	return a, cmd
}

// submitCmd moves the active dialog to Sending and returns the command that
// performs the network call. The call runs on the program context, so closing
// the dialog does not cancel it.
func (a *App) submitCmd() tea.Cmd {
	d := a.active
	ctrl := d.Controller()
	ctrl.SetText(a.input.Value())
	attempt, err := ctrl.Submit()
	switch {
	case errors.Is(err, feedback.ErrEmptyDraft):
		a.hint = "feedback is required"
		return nil
	case errors.Is(err, feedback.ErrInFlight):
		return nil
	case err != nil:
		a.hint = err.Error()
		return nil
	}
	a.hint = ""
	ctx := a.ctx
	return func() tea.Msg {
		return submitDoneMsg{dialog: d, outcome: ctrl.Send(ctx, attempt)}
	}
}

func (a *App) applyOutcome(m submitDoneMsg) {
	status := m.dialog.Controller().Resolve(m.outcome)
	if status == feedback.Sent && m.dialog == a.active && a.dialogOpen() {
		a.input.Reset()
	}
}

func (a *App) renderDialog() string {
	ctrl := a.active.Controller()
	var b strings.Builder
	b.WriteString(a.styles.heading.Render(dialogTitle) + "\n")
	b.WriteString(a.styles.muted.Render(dialogSubtitle) + "\n")
	b.WriteString(a.styles.muted.Render("for ") + a.styles.name.Render(ctrl.Snapshot().AppName) + "\n\n")
	b.WriteString(a.input.View() + "\n")
	if a.hint != "" {
		b.WriteString(a.styles.danger.Render(a.hint) + "\n")
	}
	b.WriteString("\n")

	send := a.keys.Send
	closeKey := a.keys.Close
	send.SetEnabled(ctrl.Status() != feedback.Sending)
	closeKey.SetEnabled(a.active.CanClose())
	b.WriteString(helpLine(a.styles, send, closeKey))

	switch ctrl.Status() {
	case feedback.Sending:
		b.WriteString("\n" + a.styles.muted.Render(statusSending))
	case feedback.Sent:
		b.WriteString("\n" + a.styles.success.Render(statusSent))
	case feedback.Error:
		b.WriteString("\n" + a.styles.danger.Render(statusError))
	}
	return b.String()
}

func dialogInputWidth(termWidth int) int {
	w := termWidth - 12
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}
