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

func paid(amount float64) *float64 {
	return &amount
}

func selectionOf(regions ...string) *SessionCapture.Selection {
	selection := SessionCapture.NewSelection()
	for _, region := range regions {
		selection.Toggle(region)
	}
	return selection
}

func TestSubmitEmptySelectionWritesNothing(t *testing.T) {
	store := Stores.NewMemoryStore()
	recorder := &SessionCapture.Recorder{Store: store}

	form := SessionCapture.CaptureForm{Date: "2025-03-10", StaffName: "Enas", Paid: paid(100)}
	_, err := recorder.Submit(Models.Client{Name: "Mona"}, SessionCapture.NewSelection(), Models.PriceTable{}, form)

	assert.ErrorIs(t, err, SessionCapture.ErrEmptySelection)
	records, _ := store.GetOnce(0)
	assert.Empty(t, records)
}

func TestSubmitMissingFieldsFailClosed(t *testing.T) {
	store := Stores.NewMemoryStore()
	recorder := &SessionCapture.Recorder{Store: store}
	table := Models.PriceTable{"neck": 50}

	cases := []struct {
		form SessionCapture.CaptureForm
		want error
	}{
		{SessionCapture.CaptureForm{StaffName: "Enas", Paid: paid(50)}, SessionCapture.ErrMissingDate},
		{SessionCapture.CaptureForm{Date: "2025-03-10", Paid: paid(50)}, SessionCapture.ErrMissingStaff},
		{SessionCapture.CaptureForm{Date: "2025-03-10", StaffName: "Enas"}, SessionCapture.ErrMissingPaid},
	}

	for _, tc := range cases {
		selection := selectionOf("neck")
		_, err := recorder.Submit(Models.Client{Model: gorm.Model{ID: 7}, Name: "Mona"}, selection, table, tc.form)
		assert.ErrorIs(t, err, tc.want)
		// Nothing written, selection untouched.
		records, _ := store.GetOnce(7)
		assert.Empty(t, records)
		assert.Equal(t, 1, selection.Len())
	}
}

func TestSubmitRecordsOneSessionPerRegion(t *testing.T) {
	store := Stores.NewMemoryStore()
	recorder := &SessionCapture.Recorder{Store: store}
	table := Models.PriceTable{"neck": 50, "left_arm": 100}
	selection := selectionOf("neck", "left_arm")

	form := SessionCapture.CaptureForm{Date: "2025-03-10", StaffName: "Enas", Paid: paid(100), PaymentMethod: "cash"}
	result, err := recorder.Submit(Models.Client{Model: gorm.Model{ID: 7}, Name: "Mona"}, selection, table, form)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Recorded)
	assert.Equal(t, float64(150), result.Total)
	assert.Equal(t, float64(50), result.Remaining)
	assert.Equal(t, SessionCapture.PaymentStatusPartial, result.Status)
	assert.Equal(t, 0, selection.Len())

	records, _ := store.GetOnce(7)
	require.Len(t, records, 2)
	for _, record := range records {
		// The event total is duplicated on every region's record.
		assert.Equal(t, float64(150), record.TotalPrice)
		assert.Equal(t, float64(100), record.Paid)
		assert.Equal(t, "Mona", record.ClientName)
		assert.Equal(t, "2025-03-10", record.Date)
		assert.NotEmpty(t, record.UID)
	}
	// Both records belong to the same capture event.
	assert.NotEmpty(t, records[0].CaptureID)
	assert.Equal(t, records[0].CaptureID, records[1].CaptureID)
}

func TestSubmitPartialFailureContinues(t *testing.T) {
	store := Stores.NewMemoryStore()
	store.FailRegions["neck"] = true

	var callbacks int
	recorder := &SessionCapture.Recorder{
		Store:      store,
		OnRecorded: func(Models.SessionRecord) { callbacks++ },
	}
	table := Models.PriceTable{"neck": 50, "left_arm": 100, "head": 80}
	selection := selectionOf("neck", "left_arm", "head")

	form := SessionCapture.CaptureForm{Date: "2025-03-10", StaffName: "Enas", Paid: paid(230)}
	result, err := recorder.Submit(Models.Client{Model: gorm.Model{ID: 7}, Name: "Mona"}, selection, table, form)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Recorded)
	assert.Equal(t, []string{"neck"}, result.Failed)
	assert.Equal(t, 2, callbacks)
	// Current behavior: any success clears the whole selection.
	assert.Equal(t, 0, selection.Len())
}

func TestSubmitRetainFailedKeepsFailedSelected(t *testing.T) {
	store := Stores.NewMemoryStore()
	store.FailRegions["neck"] = true

	recorder := &SessionCapture.Recorder{Store: store, RetainFailed: true}
	table := Models.PriceTable{"neck": 50, "left_arm": 100}
	selection := selectionOf("neck", "left_arm")

	form := SessionCapture.CaptureForm{Date: "2025-03-10", StaffName: "Enas", Paid: paid(150)}
	result, err := recorder.Submit(Models.Client{Model: gorm.Model{ID: 7}, Name: "Mona"}, selection, table, form)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Recorded)
	assert.Equal(t, []string{"neck"}, selection.Members())
}

func TestSubmitTotalFailure(t *testing.T) {
	store := Stores.NewMemoryStore()
	store.FailRegions["neck"] = true
	store.FailRegions["left_arm"] = true

	recorder := &SessionCapture.Recorder{Store: store}
	selection := selectionOf("neck", "left_arm")

	form := SessionCapture.CaptureForm{Date: "2025-03-10", StaffName: "Enas", Paid: paid(150)}
	result, err := recorder.Submit(Models.Client{Model: gorm.Model{ID: 7}, Name: "Mona"}, selection, Models.PriceTable{"neck": 50, "left_arm": 100}, form)

	assert.ErrorIs(t, err, SessionCapture.ErrNoneRecorded)
	assert.Equal(t, 0, result.Recorded)
	// Nothing cleared; the operator may retry unchanged.
	assert.Equal(t, 2, selection.Len())
}

func TestSubmitAppliesDiscount(t *testing.T) {
	store := Stores.NewMemoryStore()
	recorder := &SessionCapture.Recorder{Store: store}
	selection := selectionOf("neck", "left_arm")

	form := SessionCapture.CaptureForm{Date: "2025-03-10", StaffName: "Enas", Paid: paid(135), Discount: 10}
	result, err := recorder.Submit(Models.Client{Model: gorm.Model{ID: 7}, Name: "Mona"}, selection, Models.PriceTable{"neck": 50, "left_arm": 100}, form)

	require.NoError(t, err)
	assert.Equal(t, float64(135), result.Total)
	assert.Equal(t, float64(0), result.Remaining)
	assert.Equal(t, SessionCapture.PaymentStatusFull, result.Status)
}

func TestSubmitOverpaymentStatusIsFull(t *testing.T) {
	store := Stores.NewMemoryStore()
	recorder := &SessionCapture.Recorder{Store: store}
	selection := selectionOf("neck")

	form := SessionCapture.CaptureForm{Date: "2025-03-10", StaffName: "Enas", Paid: paid(200)}
	result, err := recorder.Submit(Models.Client{Model: gorm.Model{ID: 7}, Name: "Mona"}, selection, Models.PriceTable{"neck": 150}, form)

	require.NoError(t, err)
	assert.Equal(t, float64(-50), result.Remaining)
	assert.Equal(t, SessionCapture.PaymentStatusFull, result.Status)
}
