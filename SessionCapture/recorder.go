package SessionCapture

import (
	"errors"
	"log"

	"EnasClinic/Models"

	"github.com/google/uuid"
)

// SessionWriter is the write half of the external session store. WriteUnique
// must generate the record's own unique key and create it under the client's
// namespace.
type SessionWriter interface {
	WriteUnique(clientID uint, record Models.SessionRecord) (string, error)
}

type CaptureForm struct {
	Date          string   `json:"date"`
	Notes         string   `json:"notes"`
	PaymentMethod string   `json:"payment_method"`
	StaffName     string   `json:"staff_name"`
	Paid          *float64 `json:"paid"`
	Discount      float64  `json:"discount"`
}

type Result struct {
	Recorded  int      `json:"recorded"`
	Failed    []string `json:"failed,omitempty"`
	Total     float64  `json:"total"`
	Remaining float64  `json:"remaining"`
	Status    string   `json:"status"`
}

var (
	ErrEmptySelection = errors.New("no regions selected")
	ErrMissingDate    = errors.New("capture date is required")
	ErrMissingStaff   = errors.New("responsible staff name is required")
	ErrMissingPaid    = errors.New("paid amount is required")
	ErrNoneRecorded   = errors.New("no sessions were recorded")
)

// Recorder persists one SessionRecord per selected region. Each per-region
// write is attempted independently; one failure does not abort the rest.
// RetainFailed keeps the failed subset selected for retry instead of clearing
// the whole selection.
type Recorder struct {
	Store        SessionWriter
	OnRecorded   func(record Models.SessionRecord)
	RetainFailed bool
}

// Submit validates the form, then writes one record per selected region.
// Preconditions fail closed: nothing is written unless all of them hold.
// Validation failures and total write failure leave the selection untouched.
func (r *Recorder) Submit(client Models.Client, selection *Selection, table Models.PriceTable, form CaptureForm) (Result, error) {
	if selection.Len() == 0 {
		return Result{}, ErrEmptySelection
	}
	if form.Date == "" {
		return Result{}, ErrMissingDate
	}
	if form.StaffName == "" {
		return Result{}, ErrMissingStaff
	}
	if form.Paid == nil {
		return Result{}, ErrMissingPaid
	}

	total := ApplyDiscount(ComputeTotal(selection, table), form.Discount)
	remaining := ComputeRemaining(total, *form.Paid)
	status := PaymentStatusFor(remaining)

	result := Result{
		Total:     total,
		Remaining: remaining,
		Status:    status,
	}

	captureID := uuid.New().String()

	for _, region := range selection.Members() {
		record := Models.SessionRecord{
			CaptureID:     captureID,
			ClientID:      client.ID,
			ClientName:    client.Name,
			Region:        region,
			Date:          form.Date,
			Notes:         form.Notes,
			PaymentMethod: form.PaymentMethod,
			// The event total is duplicated on every region's record, not
			// split per region. The stored data shape depends on this.
			TotalPrice:    total,
			Paid:          *form.Paid,
			Remaining:     remaining,
			PaymentStatus: status,
			StaffName:     form.StaffName,
		}

		if _, err := r.Store.WriteUnique(client.ID, record); err != nil {
			log.Printf("failed to record session for region %s: %v", region, err)
			result.Failed = append(result.Failed, region)
			continue
		}

		result.Recorded++
		if r.OnRecorded != nil {
			r.OnRecorded(record)
		}
	}

	if result.Recorded == 0 {
		return result, ErrNoneRecorded
	}

	if r.RetainFailed && len(result.Failed) > 0 {
		selection.Replace(result.Failed)
	} else {
		selection.Clear()
	}

	return result, nil
}
