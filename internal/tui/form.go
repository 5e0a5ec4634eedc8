// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-emp-docs/internal/app"
	"github.com/MKhiriev/go-emp-docs/internal/config"
	"github.com/MKhiriev/go-emp-docs/internal/service"
	"github.com/MKhiriev/go-emp-docs/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	inputName = iota
	inputHireDate
	inputSalary
	inputFile
	inputCount
)

var inputLabels = [inputCount]string{"Name", "Hire date", "Salary", "File"}

// FormModel is the Bubble Tea model of the employee form. It collects the
// employee fields and a file path, runs the save step and then the upload
// step as async commands, and shows the outcome as a success banner or an
// alert overlay.
//
// Only one flow runs at a time: while a step is in flight every key except
// ctrl+c is ignored.
type FormModel struct {
	ctx       context.Context
	employees service.EmployeeService
	platform  config.ClientApp
	buildInfo models.AppBuildInfo

	inputs  []textinput.Model
	focus   int
	spinner spinner.Model

	state    models.FlowState
	inFlight models.EmployeeForm
	result   models.FlowResult

	showAlert bool
	alert     alertOverlayModel
	banner    string
	status    string

	// copyFn is swapped in tests.
	copyFn func(string) error
}

// NewFormModel creates a [FormModel] prefilled with prefill. The name input
// receives focus immediately.
func NewFormModel(ctx context.Context, employees service.EmployeeService, platform config.ClientApp, prefill config.ClientForm, buildInfo models.AppBuildInfo) *FormModel {
	inputs := make([]textinput.Model, inputCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}

	inputs[inputName].Placeholder = "employee name"
	inputs[inputName].CharLimit = 255
	inputs[inputHireDate].Placeholder = "DD-MM-YYYY"
	inputs[inputHireDate].CharLimit = 32
	inputs[inputSalary].Placeholder = "0"
	inputs[inputSalary].CharLimit = 32
	inputs[inputFile].Placeholder = "/path/to/document.pdf"
	inputs[inputFile].CharLimit = 4096

	inputs[inputName].SetValue(prefill.Name)
	inputs[inputHireDate].SetValue(prefill.HireDate)
	inputs[inputSalary].SetValue(prefill.Salary)
	inputs[inputFile].SetValue(prefill.File)
	inputs[inputName].Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &FormModel{
		ctx:       ctx,
		employees: employees,
		platform:  platform,
		buildInfo: buildInfo,
		inputs:    inputs,
		spinner:   s,
		state:     models.FlowIdle,
		copyFn:    clipboard.WriteAll,
	}
}

// Result returns the outcome of the last finished flow. Its State is
// [models.FlowIdle] if no flow has finished yet.
func (m *FormModel) Result() models.FlowResult {
	return m.result
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the
// active input.
func (m *FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [saveDoneMsg]   ends the save step and, on success only, starts the upload.
//   - [uploadDoneMsg] ends the flow with the success banner or an alert.
//   - [copiedMsg]     reports the clipboard outcome in the status line.
//   - key presses, see handleKey.
func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case saveDoneMsg:
		if msg.err != nil {
			m.finish(models.FlowResult{State: models.FlowFailed, Err: msg.err, Notice: service.NoticeFor(msg.err)})
			return m, nil
		}
		m.state = models.FlowUploading
		m.result.DocumentID = msg.sub.DocumentID
		return m, m.cmdUpload(m.inFlight, msg.sub)

	case uploadDoneMsg:
		result := models.FlowResult{State: models.FlowDone, DocumentID: m.result.DocumentID, Notice: service.NoticeFor(msg.err), Err: msg.err}
		if msg.err != nil {
			result.State = models.FlowFailed
		}
		m.finish(result)
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("copy failed: %v", msg.err)
		} else {
			m.status = "Document id copied"
		}
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.busy() {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *FormModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.showAlert {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.showAlert = false
			m.alert.message = ""
		}
		return m, nil
	}

	if m.busy() {
		return m, nil
	}

	if m.state == models.FlowDone {
		switch {
		case key.Matches(msg, keys.copy):
			return m, m.cmdCopy(m.result.DocumentID.String())
		case key.Matches(msg, keys.newForm):
			m.reset()
			return m, textinput.Blink
		case key.Matches(msg, keys.esc):
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		return m, tea.Quit
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.down):
		m.focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab), key.Matches(msg, keys.up):
		m.focusPrev()
		return m, nil
	case key.Matches(msg, keys.enter):
		return m, m.start()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// start snapshots the form and launches the save step.
func (m *FormModel) start() tea.Cmd {
	m.inFlight = m.snapshot()
	m.state = models.FlowSubmitting
	m.result = models.FlowResult{}
	m.banner = ""
	m.status = ""

	return tea.Batch(m.spinner.Tick, m.cmdSubmit(m.inFlight))
}

func (m *FormModel) finish(result models.FlowResult) {
	m.state = result.State
	m.result = result

	if result.Notice.Kind == models.NoticeSuccess {
		m.banner = result.Notice.Text
		m.blurAll()
		return
	}

	m.showAlert = true
	m.alert.message = result.Notice.Text
}

func (m *FormModel) snapshot() models.EmployeeForm {
	return models.EmployeeForm{
		Name:          m.inputs[inputName].Value(),
		HireDate:      m.inputs[inputHireDate].Value(),
		Salary:        m.inputs[inputSalary].Value(),
		ApplicationID: m.platform.ApplicationID,
		SessionID:     m.platform.SessionID,
		File:          strings.TrimSpace(m.inputs[inputFile].Value()),
	}
}

func (m *FormModel) reset() {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.state = models.FlowIdle
	m.result = models.FlowResult{}
	m.inFlight = models.EmployeeForm{}
	m.banner = ""
	m.status = ""
	m.focus = inputName
	m.inputs[m.focus].Focus()
}

func (m *FormModel) busy() bool {
	return m.state == models.FlowSubmitting || m.state == models.FlowUploading
}

// View implements [tea.Model].
func (m *FormModel) View() string {
	var b strings.Builder

	for i, input := range m.inputs {
		b.WriteString(labelStyle.Render(inputLabels[i]))
		b.WriteString("│ [")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}
	b.WriteString(labelStyle.Render("App"))
	b.WriteString("│ ")
	b.WriteString(readOnlyStyle.Render(valueOrDash(m.platform.ApplicationID)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Session"))
	b.WriteString("│ ")
	b.WriteString(readOnlyStyle.Render(valueOrDash(m.platform.SessionID)))
	b.WriteString("\n")

	switch m.state {
	case models.FlowSubmitting:
		b.WriteString("\n" + m.spinner.View() + " " + app.MsgSaving + "\n")
	case models.FlowUploading:
		b.WriteString("\n" + m.spinner.View() + " " + app.MsgUploading + "\n")
	}

	if m.banner != "" {
		b.WriteString("\n")
		b.WriteString(successStyle.Render(m.banner))
		b.WriteString("\nDocument id: ")
		b.WriteString(m.result.DocumentID.String())
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderBuildInfoLine(m.buildInfo))

	body := renderPage("EMPLOYEE", strings.TrimRight(b.String(), "\n"), m.hotKeys())
	if m.showAlert {
		body += "\n\n" + m.alert.View()
	}

	return appStyle.Render(body)
}

func (m *FormModel) hotKeys() string {
	switch {
	case m.busy():
		return "please wait"
	case m.state == models.FlowDone:
		return "c: copy document id │ n: new employee │ esc: quit"
	default:
		return "tab: next field │ enter: save │ esc: quit"
	}
}

func (m *FormModel) cmdSubmit(form models.EmployeeForm) tea.Cmd {
	ctx := m.ctx
	svc := m.employees
	return func() tea.Msg {
		sub, err := svc.Submit(ctx, form)
		return saveDoneMsg{sub: sub, err: err}
	}
}

func (m *FormModel) cmdUpload(form models.EmployeeForm, sub models.Submission) tea.Cmd {
	ctx := m.ctx
	svc := m.employees
	return func() tea.Msg {
		return uploadDoneMsg{err: svc.Upload(ctx, form, sub)}
	}
}

func (m *FormModel) cmdCopy(text string) tea.Cmd {
	copyFn := m.copyFn
	return func() tea.Msg {
		if err := copyFn(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m *FormModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *FormModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *FormModel) blurAll() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}
