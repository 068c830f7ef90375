package cli

import (
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inovacc/entrycard/internal/model"
	"github.com/inovacc/entrycard/internal/store/sqlite"
)

func seedEntry(serial int64) *model.Entry {
	return &model.Entry{
		SerialNumber: serial,
		AssociateID:  "A-" + strconv.FormatInt(serial, 10),
		Date:         "2026-08-20",
		Name:         "Person " + strconv.FormatInt(serial, 10),
		Mobile:       "1234567890",
	}
}

// newTestForm builds a FormModel over a real temp-dir store seeded with
// n entries.
func newTestForm(t *testing.T, n int) (*FormModel, *sqlite.Store) {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := sqlite.New(filepath.Join(t.TempDir(), "entries.db"), log)
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	for i := 1; i <= n; i++ {
		require.NoError(t, db.Create(seedEntry(int64(i))))
	}

	m, err := NewFormModel(db, log)
	require.NoError(t, err)

	return m, db
}

func (m *FormModel) setField(field int, value string) {
	m.inputs[field].SetValue(value)
}

func TestEmptyStoreStartsInAddMode(t *testing.T) {
	m, _ := newTestForm(t, 0)

	assert.Equal(t, -1, m.cursor)
	assert.Equal(t, int64(1), m.serialNumber)
	assert.Equal(t, model.Today(), m.date)

	assert.True(t, m.buttonEnabled(btnSubmit))
	assert.True(t, m.buttonEnabled(btnAddNew))
	assert.False(t, m.buttonEnabled(btnUpdate))
	assert.False(t, m.buttonEnabled(btnDelete))
	assert.False(t, m.buttonEnabled(btnPrevious))
	assert.False(t, m.buttonEnabled(btnNext))
}

func TestSeededStoreStartsBrowsingFirstEntry(t *testing.T) {
	m, _ := newTestForm(t, 2)

	assert.Equal(t, 0, m.cursor)
	assert.Equal(t, int64(1), m.serialNumber)
	assert.Equal(t, "A-1", m.inputs[fieldAssociateID].Value())

	assert.False(t, m.buttonEnabled(btnSubmit))
	assert.True(t, m.buttonEnabled(btnUpdate))
	assert.True(t, m.buttonEnabled(btnDelete))
	assert.False(t, m.buttonEnabled(btnPrevious), "at first entry")
	assert.True(t, m.buttonEnabled(btnNext))
}

func TestNavigationBoundaries(t *testing.T) {
	m, _ := newTestForm(t, 2)

	m.prevEntry()
	assert.Equal(t, 0, m.cursor, "cursor unchanged at first entry")
	assert.Equal(t, statusInfo, m.statusKind)
	assert.Equal(t, "This is the first entry.", m.status)

	m.nextEntry()
	assert.Equal(t, 1, m.cursor)
	assert.Equal(t, int64(2), m.serialNumber)

	m.nextEntry()
	assert.Equal(t, 1, m.cursor, "cursor unchanged at last entry")
	assert.Equal(t, "This is the last entry.", m.status)

	m.prevEntry()
	assert.Equal(t, 0, m.cursor)
}

func TestNavigationWithoutEntries(t *testing.T) {
	m, _ := newTestForm(t, 0)

	m.nextEntry()
	assert.Equal(t, -1, m.cursor)
	assert.Equal(t, "No entries available.", m.status)

	m.prevEntry()
	assert.Equal(t, -1, m.cursor)
	assert.Equal(t, "No entries available.", m.status)
}

func TestNavigationFromAddModeEntersBrowse(t *testing.T) {
	m, _ := newTestForm(t, 2)

	m.activateButton(btnAddNew)
	require.Equal(t, -1, m.cursor)

	m.nextEntry()
	assert.Equal(t, 0, m.cursor)
	assert.Equal(t, int64(1), m.serialNumber)
}

func TestSubmitCreatesAndResetsToAddMode(t *testing.T) {
	m, db := newTestForm(t, 0)

	m.setField(fieldAssociateID, "A-100")
	m.setField(fieldName, "Asha Verma")
	m.setField(fieldMobile, "1234567890")
	m.setField(fieldAge, "34")

	m.submitForm()

	assert.Equal(t, statusSuccess, m.statusKind)
	assert.Equal(t, -1, m.cursor, "create returns to add mode, not browse")
	assert.Equal(t, int64(2), m.serialNumber, "serial advanced for the next entry")
	assert.Empty(t, m.inputs[fieldAssociateID].Value(), "form cleared")

	got, err := db.Get(1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "A-100", got.AssociateID)
	assert.Equal(t, int64(34), got.Age)
	assert.Equal(t, model.Today(), got.Date)
}

func TestSubmitShowsAllValidationErrors(t *testing.T) {
	m, db := newTestForm(t, 0)

	m.submitForm()

	assert.Equal(t, statusError, m.statusKind)
	assert.Equal(t, -1, m.cursor)

	lines := strings.Split(m.status, "\n")
	assert.Equal(t, []string{
		model.ErrAssociateIDRequired,
		model.ErrNameRequired,
		model.ErrMobileRequired,
	}, lines)

	entries, err := db.ListAll()
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing persisted on validation failure")
}

func TestSubmitUnparseableAgeFailsRangeCheck(t *testing.T) {
	m, _ := newTestForm(t, 0)

	m.setField(fieldAssociateID, "A-100")
	m.setField(fieldName, "Asha Verma")
	m.setField(fieldMobile, "1234567890")
	m.setField(fieldAge, "old")

	m.submitForm()

	assert.Equal(t, statusError, m.statusKind)
	assert.Equal(t, model.ErrAgeRange, m.status)
}

func TestUpdatePreservesDateAndRelocatesCursor(t *testing.T) {
	m, db := newTestForm(t, 2)

	m.nextEntry()
	require.Equal(t, 1, m.cursor)

	m.setField(fieldName, "Renamed Person")
	m.updateEntry()

	assert.Equal(t, statusSuccess, m.statusKind)
	assert.Equal(t, 1, m.cursor, "cursor relocated to the updated record")

	got, err := db.Get(2)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Renamed Person", got.Name)
	assert.Equal(t, "2026-08-20", got.Date, "date preserved, not restamped")
}

func TestUpdateWithOwnDataIsNotADuplicate(t *testing.T) {
	m, _ := newTestForm(t, 1)

	m.updateEntry()

	assert.Equal(t, statusSuccess, m.statusKind)
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	m, db := newTestForm(t, 1)

	m.activateButton(btnDelete)
	assert.True(t, m.confirmingDelete)

	// Declining keeps the record
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	assert.False(t, m.confirmingDelete)
	assert.Equal(t, "Delete cancelled.", m.status)

	entries, err := db.ListAll()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestDeleteClampsCursor(t *testing.T) {
	m, db := newTestForm(t, 3)

	m.nextEntry()
	m.nextEntry()
	require.Equal(t, 2, m.cursor)

	m.activateButton(btnDelete)
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})

	assert.Equal(t, statusSuccess, m.statusKind)
	assert.Equal(t, 1, m.cursor, "cursor clamped to the last valid index")
	assert.Equal(t, int64(2), m.serialNumber)

	got, err := db.Get(3)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDeleteLastEntryFallsBackToAddMode(t *testing.T) {
	m, _ := newTestForm(t, 1)

	m.activateButton(btnDelete)
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})

	assert.Equal(t, -1, m.cursor)
	assert.Equal(t, int64(1), m.serialNumber, "empty store starts over at 1")
	assert.True(t, m.buttonEnabled(btnSubmit))
	assert.False(t, m.buttonEnabled(btnPrevious))
	assert.False(t, m.buttonEnabled(btnNext))
}

func TestAddNewRecomputesSerial(t *testing.T) {
	m, _ := newTestForm(t, 3)

	m.activateButton(btnAddNew)

	assert.Equal(t, -1, m.cursor)
	assert.Equal(t, int64(4), m.serialNumber)
	assert.Empty(t, m.inputs[fieldAssociateID].Value())
	assert.True(t, m.buttonEnabled(btnPrevious), "entries exist to browse back into")
}
