package SessionCapture

import (
	"errors"
	"sync"

	"EnasClinic/Models"
)

// PriceSource is the one-time keyed read of the full region price mapping,
// fetched when the capture form opens.
type PriceSource interface {
	PriceTable() (Models.PriceTable, error)
}

type State int

const (
	StateIdle State = iota
	StateSelecting
	StateCaptureOpen
)

func (s State) String() string {
	switch s {
	case StateSelecting:
		return "selecting"
	case StateCaptureOpen:
		return "capture_open"
	default:
		return "idle"
	}
}

var (
	ErrFormOpen        = errors.New("capture form is open")
	ErrFormNotOpen     = errors.New("capture form is not open")
	ErrNothingSelected = errors.New("select at least one region first")
)

// CaptureView orchestrates one operator's capture workflow:
// Idle -> Selecting -> CaptureOpen and back. The form only opens on a
// non-empty selection, and no state is exited except by explicit action or a
// successful submit.
type CaptureView struct {
	mu        sync.Mutex
	state     State
	selection *Selection
	table     Models.PriceTable
	recorder  *Recorder
	prices    PriceSource
}

func NewCaptureView(recorder *Recorder, prices PriceSource) *CaptureView {
	return &CaptureView{
		state:     StateIdle,
		selection: NewSelection(),
		recorder:  recorder,
		prices:    prices,
	}
}

func (v *CaptureView) CurrentState() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *CaptureView) Selected() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selection.Members()
}

func (v *CaptureView) Toggle(region string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state == StateCaptureOpen {
		return ErrFormOpen
	}
	v.selection.Toggle(region)
	v.syncSelectionState()
	return nil
}

func (v *CaptureView) ClearSelection() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state == StateCaptureOpen {
		return ErrFormOpen
	}
	v.selection.Clear()
	v.state = StateIdle
	return nil
}

// OpenForm guards on a non-empty selection, fetches the price table once and
// returns it with the undiscounted total for the current selection.
func (v *CaptureView) OpenForm() (Models.PriceTable, float64, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state == StateCaptureOpen {
		return v.table, ComputeTotal(v.selection, v.table), nil
	}
	if v.selection.Len() == 0 {
		return nil, 0, ErrNothingSelected
	}

	table, err := v.prices.PriceTable()
	if err != nil {
		return nil, 0, err
	}

	v.table = table
	v.state = StateCaptureOpen
	return table, ComputeTotal(v.selection, table), nil
}

// Cancel discards local form state only; the selection survives.
func (v *CaptureView) Cancel() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state != StateCaptureOpen {
		return
	}
	v.table = nil
	v.syncSelectionState()
}

// Submit runs the recorder against the current selection. A validation
// failure or total write failure keeps the form open so the operator can
// correct and resubmit; any recorded session closes the form.
func (v *CaptureView) Submit(client Models.Client, form CaptureForm) (Result, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state != StateCaptureOpen {
		return Result{}, ErrFormNotOpen
	}

	result, err := v.recorder.Submit(client, v.selection, v.table, form)
	if err != nil {
		return result, err
	}

	v.table = nil
	v.syncSelectionState()
	return result, nil
}

func (v *CaptureView) syncSelectionState() {
	if v.selection.Len() > 0 {
		v.state = StateSelecting
	} else {
		v.state = StateIdle
	}
}

// Manager hands out one CaptureView per operator. Selection and form state
// are never shared across operators.
type Manager struct {
	mu      sync.Mutex
	views   map[uint]*CaptureView
	newView func() *CaptureView
}

func NewManager(newView func() *CaptureView) *Manager {
	return &Manager{
		views:   make(map[uint]*CaptureView),
		newView: newView,
	}
}

func (m *Manager) View(userID uint) *CaptureView {
	m.mu.Lock()
	defer m.mu.Unlock()
	view, ok := m.views[userID]
	if !ok {
		view = m.newView()
		m.views[userID] = view
	}
	return view
}

func (m *Manager) Drop(userID uint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.views, userID)
}
