package cli

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/inovacc/entrycard/internal/model"
	"github.com/inovacc/entrycard/internal/store"
)

// Editable field indices. Serial number and date are derived and
// rendered read-only, so they are not inputs.
const (
	fieldAssociateID = iota
	fieldName
	fieldMobile
	fieldHeight
	fieldAge
	fieldEmail
	fieldAdhaar
	fieldDateOfBirth
	numFields
)

// Button indices continue after the inputs in the focus cycle.
const (
	btnSubmit = numFields + iota
	btnPrevious
	btnNext
	btnUpdate
	btnDelete
	btnAddNew
	focusSlots
)

var buttonLabels = [...]string{"Submit", "Previous", "Next", "Update", "Delete", "Add New"}

var fieldLabels = [...]string{
	"Associate I.D. No.",
	"Name",
	"Mobile",
	"Height (cm)",
	"Age",
	"E-Mail Id",
	"Adhaar Card No.",
	"DOB",
}

type statusKind int

const (
	statusNone statusKind = iota
	statusSuccess
	statusError
	statusInfo
)

// Generic persistence failure messages; storage detail stays in the log.
const (
	msgSaveFailed   = "An error occurred while saving the entry."
	msgUpdateFailed = "An error occurred while updating the entry."
	msgDeleteFailed = "An error occurred while deleting the entry."
	msgLoadFailed   = "An error occurred while loading entries."
)

// FormModel is the entry card form: one record on screen at a time, a
// cached list of all entries with a navigation cursor, and a browse/add
// mode state machine. The cursor value -1 means add mode.
type FormModel struct {
	db  store.Store
	log *slog.Logger

	inputs     []textinput.Model
	focusIndex int

	serialNumber int64
	date         string

	entries []model.Entry
	cursor  int

	confirmingDelete bool

	status     string
	statusKind statusKind

	quitting bool
}

// NewFormModel builds the form over the given store, loading the entry
// list and landing on the first entry, or in add mode when the store is
// empty.
func NewFormModel(db store.Store, log *slog.Logger) (*FormModel, error) {
	if log == nil {
		log = slog.Default()
	}

	m := &FormModel{
		db:     db,
		log:    log,
		inputs: make([]textinput.Model, numFields),
		cursor: -1,
	}

	for i := range m.inputs {
		t := textinput.New()
		t.Cursor.Style = cursorStyle
		t.CharLimit = 128

		switch i {
		case fieldMobile:
			t.Placeholder = "10 digits"
			t.CharLimit = 10
		case fieldAge:
			t.Placeholder = "optional"
			t.CharLimit = 3
		case fieldAdhaar:
			t.Placeholder = "12 digits (optional)"
			t.CharLimit = 12
		case fieldDateOfBirth:
			t.Placeholder = "YYYY-MM-DD (optional)"
			t.CharLimit = 10
		case fieldHeight, fieldEmail:
			t.Placeholder = "optional"
		}

		m.inputs[i] = t
	}

	entries, err := db.ListAll()
	if err != nil {
		return nil, err
	}

	m.entries = entries
	if len(m.entries) > 0 {
		m.cursor = 0
		m.loadEntry(m.entries[0])
	} else if err := m.resetForm(); err != nil {
		return nil, err
	}

	m.setFocus(fieldAssociateID)
	log.Info("form initialized", "entries", len(m.entries))

	return m, nil
}

func (m *FormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.updateInputs(msg)
	}

	// A pending delete confirmation swallows all keys until resolved.
	if m.confirmingDelete {
		switch keyMsg.String() {
		case "y", "Y":
			m.confirmDelete()
		case "n", "N", "esc":
			m.confirmingDelete = false
			m.setStatus(statusInfo, "Delete cancelled.")
		}

		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "enter":
		if m.focusIndex >= numFields {
			m.activateButton(m.focusIndex)
			return m, nil
		}

		// Enter inside a field advances to the next one
		return m, m.cycleFocus(1)

	case "tab", "down":
		return m, m.cycleFocus(1)

	case "shift+tab", "up":
		return m, m.cycleFocus(-1)
	}

	return m, m.updateInputs(msg)
}

func (m *FormModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))

	// Only the focused input responds, so updating all of them is safe.
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}

	return tea.Batch(cmds...)
}

// cycleFocus moves the focus by delta across inputs and buttons.
func (m *FormModel) cycleFocus(delta int) tea.Cmd {
	m.focusIndex += delta
	if m.focusIndex >= focusSlots {
		m.focusIndex = 0
	} else if m.focusIndex < 0 {
		m.focusIndex = focusSlots - 1
	}

	return m.setFocus(m.focusIndex)
}

func (m *FormModel) setFocus(index int) tea.Cmd {
	m.focusIndex = index

	cmds := make([]tea.Cmd, 0, len(m.inputs))

	for i := range m.inputs {
		if i == index {
			cmds = append(cmds, m.inputs[i].Focus())
			m.inputs[i].PromptStyle = focusedStyle
			m.inputs[i].TextStyle = focusedStyle

			continue
		}

		m.inputs[i].Blur()
		m.inputs[i].PromptStyle = noStyle
		m.inputs[i].TextStyle = noStyle
	}

	return tea.Batch(cmds...)
}

// buttonEnabled implements the browse/add mode button states.
func (m *FormModel) buttonEnabled(idx int) bool {
	browsing := m.cursor >= 0

	switch idx {
	case btnSubmit:
		return !browsing
	case btnUpdate, btnDelete:
		return browsing
	case btnPrevious:
		if !browsing {
			return len(m.entries) > 0
		}
		return m.cursor > 0
	case btnNext:
		if !browsing {
			return len(m.entries) > 0
		}
		return m.cursor < len(m.entries)-1
	case btnAddNew:
		return true
	}

	return false
}

func (m *FormModel) activateButton(idx int) {
	switch idx {
	case btnSubmit:
		if m.cursor >= 0 {
			return
		}
		m.submitForm()
	case btnPrevious:
		m.prevEntry()
	case btnNext:
		m.nextEntry()
	case btnUpdate:
		if m.cursor < 0 {
			m.setStatus(statusError, "No entry selected to update.")
			return
		}
		m.updateEntry()
	case btnDelete:
		if m.cursor < 0 {
			m.setStatus(statusError, "No entry selected to delete.")
			return
		}
		m.confirmingDelete = true
		m.setStatus(statusInfo, "Are you sure you want to delete this entry? (y/n)")
	case btnAddNew:
		if err := m.resetForm(); err != nil {
			m.setStatus(statusError, msgLoadFailed)
		}
	}
}

// gather builds an entry from the current widget values. An
// unparseable age is mapped to -1 so it fails the range check in the
// same position of the validation order.
func (m *FormModel) gather() *model.Entry {
	e := &model.Entry{
		SerialNumber: m.serialNumber,
		Date:         m.date,
		AssociateID:  strings.TrimSpace(m.inputs[fieldAssociateID].Value()),
		Name:         strings.TrimSpace(m.inputs[fieldName].Value()),
		Mobile:       strings.TrimSpace(m.inputs[fieldMobile].Value()),
		Height:       strings.TrimSpace(m.inputs[fieldHeight].Value()),
		Email:        strings.TrimSpace(m.inputs[fieldEmail].Value()),
		AdhaarID:     strings.TrimSpace(m.inputs[fieldAdhaar].Value()),
		DateOfBirth:  strings.TrimSpace(m.inputs[fieldDateOfBirth].Value()),
	}

	if ageText := strings.TrimSpace(m.inputs[fieldAge].Value()); ageText != "" {
		age, err := strconv.ParseInt(ageText, 10, 64)
		if err != nil {
			age = -1
		}
		e.Age = age
	}

	return e
}

// submitForm creates a new entry. On success the form resets to add
// mode for the next entry; it does not jump to the created record.
func (m *FormModel) submitForm() {
	m.log.Info("form submission initiated")

	e := m.gather()
	e.Date = model.Today()

	errs, err := m.db.Validate(e, false)
	if err != nil {
		m.setStatus(statusError, msgSaveFailed)
		return
	}

	if len(errs) > 0 {
		m.log.Warn("form submission failed", "problems", strings.Join(errs, "; "))
		m.setStatus(statusError, strings.Join(errs, "\n"))

		return
	}

	if err := m.db.Create(e); err != nil {
		m.setStatus(statusError, msgSaveFailed)
		return
	}

	if err := m.resetForm(); err != nil {
		m.setStatus(statusError, msgSaveFailed)
		return
	}

	m.setStatus(statusSuccess, "Entry saved successfully.")
}

// updateEntry rewrites the loaded record. The date is preserved from
// load, never restamped.
func (m *FormModel) updateEntry() {
	m.log.Info("entry update initiated", "serial_number", m.serialNumber)

	e := m.gather()

	errs, err := m.db.Validate(e, true)
	if err != nil {
		m.setStatus(statusError, msgUpdateFailed)
		return
	}

	if len(errs) > 0 {
		m.log.Warn("entry update failed", "problems", strings.Join(errs, "; "))
		m.setStatus(statusError, strings.Join(errs, "\n"))

		return
	}

	if err := m.db.Update(e); err != nil {
		m.setStatus(statusError, msgUpdateFailed)
		return
	}

	// Reload and relocate the cursor to the updated record
	entries, err := m.db.ListAll()
	if err != nil {
		m.setStatus(statusError, msgUpdateFailed)
		return
	}

	m.entries = entries
	for i := range m.entries {
		if m.entries[i].SerialNumber == e.SerialNumber {
			m.cursor = i
			break
		}
	}

	m.setStatus(statusSuccess, "Entry updated successfully.")
}

// confirmDelete performs the delete after interactive confirmation,
// clamping the cursor into the shrunken list or falling back to add
// mode when the last entry is gone.
func (m *FormModel) confirmDelete() {
	m.confirmingDelete = false

	if err := m.db.Delete(m.serialNumber); err != nil {
		m.setStatus(statusError, msgDeleteFailed)
		return
	}

	m.entries = append(m.entries[:m.cursor], m.entries[m.cursor+1:]...)

	if len(m.entries) == 0 {
		if err := m.resetForm(); err != nil {
			m.setStatus(statusError, msgLoadFailed)
			return
		}
	} else {
		if m.cursor >= len(m.entries) {
			m.cursor = len(m.entries) - 1
		}
		m.loadEntry(m.entries[m.cursor])
	}

	m.setStatus(statusSuccess, "Entry deleted successfully.")
}

func (m *FormModel) nextEntry() {
	switch {
	case len(m.entries) == 0:
		m.setStatus(statusInfo, "No entries available.")
	case m.cursor < 0:
		// Jump from add mode into browsing at the first entry
		m.cursor = 0
		m.loadEntry(m.entries[0])
		m.clearStatus()
	case m.cursor < len(m.entries)-1:
		m.cursor++
		m.loadEntry(m.entries[m.cursor])
		m.clearStatus()
	default:
		m.setStatus(statusInfo, "This is the last entry.")
	}
}

func (m *FormModel) prevEntry() {
	switch {
	case len(m.entries) == 0:
		m.setStatus(statusInfo, "No entries available.")
	case m.cursor < 0:
		m.cursor = 0
		m.loadEntry(m.entries[0])
		m.clearStatus()
	case m.cursor > 0:
		m.cursor--
		m.loadEntry(m.entries[m.cursor])
		m.clearStatus()
	default:
		m.setStatus(statusInfo, "This is the first entry.")
	}
}

// loadEntry copies a record into the widgets.
func (m *FormModel) loadEntry(e model.Entry) {
	m.serialNumber = e.SerialNumber
	m.date = e.Date

	m.inputs[fieldAssociateID].SetValue(e.AssociateID)
	m.inputs[fieldName].SetValue(e.Name)
	m.inputs[fieldMobile].SetValue(e.Mobile)
	m.inputs[fieldHeight].SetValue(e.Height)
	m.inputs[fieldEmail].SetValue(e.Email)
	m.inputs[fieldAdhaar].SetValue(e.AdhaarID)
	m.inputs[fieldDateOfBirth].SetValue(e.DateOfBirth)

	if e.Age != 0 {
		m.inputs[fieldAge].SetValue(strconv.FormatInt(e.Age, 10))
	} else {
		m.inputs[fieldAge].SetValue("")
	}
}

// resetForm switches to add mode: cleared fields, fresh serial number,
// today's date, refreshed entry cache, cursor unset.
func (m *FormModel) resetForm() error {
	next, err := m.db.NextSerialNumber()
	if err != nil {
		return err
	}

	entries, err := m.db.ListAll()
	if err != nil {
		return err
	}

	m.serialNumber = next
	m.date = model.Today()
	m.entries = entries
	m.cursor = -1

	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}

	m.setFocus(fieldAssociateID)
	m.log.Debug("form reset for next entry", "serial_number", next)

	return nil
}

func (m *FormModel) setStatus(kind statusKind, msg string) {
	m.statusKind = kind
	m.status = msg
}

func (m *FormModel) clearStatus() {
	m.statusKind = statusNone
	m.status = ""
}

func (m *FormModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(headerStyle.Render("Entry Card Form"))
	b.WriteString("\n")

	mode := fmt.Sprintf("entry %d of %d", m.cursor+1, len(m.entries))
	if m.cursor < 0 {
		mode = "new entry"
	}

	b.WriteString(blurredStyle.Render(mode))
	b.WriteString("\n\n")

	// Derived, read-only fields
	b.WriteString(fmt.Sprintf(" %s %s\n", blurredStyle.Render("Sr. No.:"),
		strconv.FormatInt(m.serialNumber, 10)))
	b.WriteString(fmt.Sprintf(" %s %s\n\n", blurredStyle.Render("Date:"), m.date))

	for i := range m.inputs {
		b.WriteString(fmt.Sprintf(" %s\n %s\n\n",
			blurredStyle.Render(fieldLabels[i]+":"), m.inputs[i].View()))
	}

	b.WriteString(" ")
	for i := btnSubmit; i < focusSlots; i++ {
		b.WriteString(m.renderButton(i))
		b.WriteString("  ")
	}
	b.WriteString("\n")

	if m.status != "" {
		style := infoStyle
		switch m.statusKind {
		case statusSuccess:
			style = successStyle
		case statusError:
			style = errorStyle
		}

		b.WriteString("\n")
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(" tab/shift+tab: navigate • enter: activate • esc: quit"))
	b.WriteString("\n")

	return docStyle.Render(b.String())
}

func (m *FormModel) renderButton(idx int) string {
	label := buttonLabels[idx-numFields]

	switch {
	case !m.buttonEnabled(idx):
		return disabledStyle.Render(fmt.Sprintf("[ %s ]", label))
	case m.focusIndex == idx:
		return focusedStyle.Render(fmt.Sprintf("[ %s ]", label))
	default:
		return fmt.Sprintf("[ %s ]", blurredStyle.Render(label))
	}
}
