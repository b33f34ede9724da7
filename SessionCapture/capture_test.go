package SessionCapture_test

import (
	"testing"

	"EnasClinic/Models"
	"EnasClinic/SessionCapture"
	"EnasClinic/Stores"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newView(store *Stores.MemoryStore) *SessionCapture.CaptureView {
	return SessionCapture.NewCaptureView(&SessionCapture.Recorder{Store: store}, store)
}

func TestCaptureViewStateTransitions(t *testing.T) {
	store := Stores.NewMemoryStore()
	store.Prices["neck"] = 50
	view := newView(store)

	assert.Equal(t, SessionCapture.StateIdle, view.CurrentState())

	require.NoError(t, view.Toggle("neck"))
	assert.Equal(t, SessionCapture.StateSelecting, view.CurrentState())

	require.NoError(t, view.Toggle("neck"))
	assert.Equal(t, SessionCapture.StateIdle, view.CurrentState())
}

func TestOpenFormRequiresSelection(t *testing.T) {
	store := Stores.NewMemoryStore()
	view := newView(store)

	_, _, err := view.OpenForm()
	assert.ErrorIs(t, err, SessionCapture.ErrNothingSelected)
	assert.Equal(t, SessionCapture.StateIdle, view.CurrentState())
}

func TestOpenFormLoadsPriceTableOnce(t *testing.T) {
	store := Stores.NewMemoryStore()
	store.Prices["neck"] = 50
	view := newView(store)

	require.NoError(t, view.Toggle("neck"))
	table, total, err := view.OpenForm()
	require.NoError(t, err)
	assert.Equal(t, float64(50), table["neck"])
	assert.Equal(t, float64(50), total)
	assert.Equal(t, SessionCapture.StateCaptureOpen, view.CurrentState())

	// Price changes after the form opened are not picked up.
	store.Prices["neck"] = 500
	table, total, err = view.OpenForm()
	require.NoError(t, err)
	assert.Equal(t, float64(50), table["neck"])
	assert.Equal(t, float64(50), total)
}

func TestToggleBlockedWhileFormOpen(t *testing.T) {
	store := Stores.NewMemoryStore()
	view := newView(store)

	require.NoError(t, view.Toggle("neck"))
	_, _, err := view.OpenForm()
	require.NoError(t, err)

	assert.ErrorIs(t, view.Toggle("head"), SessionCapture.ErrFormOpen)
	assert.ErrorIs(t, view.ClearSelection(), SessionCapture.ErrFormOpen)
}

func TestCancelKeepsSelection(t *testing.T) {
	store := Stores.NewMemoryStore()
	view := newView(store)

	require.NoError(t, view.Toggle("neck"))
	_, _, err := view.OpenForm()
	require.NoError(t, err)

	view.Cancel()
	assert.Equal(t, SessionCapture.StateSelecting, view.CurrentState())
	assert.Equal(t, []string{"neck"}, view.Selected())
}

func TestSubmitValidationFailureKeepsFormOpen(t *testing.T) {
	store := Stores.NewMemoryStore()
	view := newView(store)

	require.NoError(t, view.Toggle("neck"))
	_, _, err := view.OpenForm()
	require.NoError(t, err)

	_, err = view.Submit(Models.Client{Model: gorm.Model{ID: 7}}, SessionCapture.CaptureForm{StaffName: "Enas", Paid: paid(50)})
	assert.ErrorIs(t, err, SessionCapture.ErrMissingDate)
	assert.Equal(t, SessionCapture.StateCaptureOpen, view.CurrentState())
	assert.Equal(t, []string{"neck"}, view.Selected())
}

func TestSubmitSuccessClosesFormAndClearsSelection(t *testing.T) {
	store := Stores.NewMemoryStore()
	store.Prices["neck"] = 50
	view := newView(store)

	require.NoError(t, view.Toggle("neck"))
	_, _, err := view.OpenForm()
	require.NoError(t, err)

	result, err := view.Submit(Models.Client{Model: gorm.Model{ID: 7}, Name: "Mona"}, SessionCapture.CaptureForm{
		Date: "2025-03-10", StaffName: "Enas", Paid: paid(50),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Recorded)
	assert.Equal(t, SessionCapture.StateIdle, view.CurrentState())
	assert.Empty(t, view.Selected())

	records, _ := store.GetOnce(7)
	assert.Len(t, records, 1)
}

func TestSubmitRequiresOpenForm(t *testing.T) {
	store := Stores.NewMemoryStore()
	view := newView(store)

	require.NoError(t, view.Toggle("neck"))
	_, err := view.Submit(Models.Client{Model: gorm.Model{ID: 7}}, SessionCapture.CaptureForm{})
	assert.ErrorIs(t, err, SessionCapture.ErrFormNotOpen)
}

func TestManagerIsolatesOperators(t *testing.T) {
	store := Stores.NewMemoryStore()
	manager := SessionCapture.NewManager(func() *SessionCapture.CaptureView {
		return newView(store)
	})

	require.NoError(t, manager.View(1).Toggle("neck"))
	assert.Empty(t, manager.View(2).Selected())
	assert.Equal(t, []string{"neck"}, manager.View(1).Selected())

	manager.Drop(1)
	assert.Empty(t, manager.View(1).Selected())
}
