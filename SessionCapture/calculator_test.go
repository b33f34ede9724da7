package SessionCapture_test

import (
	"testing"

	"EnasClinic/Models"
	"EnasClinic/SessionCapture"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotal(t *testing.T) {
	table := Models.PriceTable{"left_arm": 100, "neck": 50}

	selection := SessionCapture.NewSelection()
	selection.Toggle("left_arm")
	selection.Toggle("neck")

	assert.Equal(t, float64(150), SessionCapture.ComputeTotal(selection, table))
}

func TestComputeTotalAbsentRegionIsZero(t *testing.T) {
	table := Models.PriceTable{"neck": 50}

	selection := SessionCapture.NewSelection()
	selection.Toggle("neck")
	selection.Toggle("left_foot")

	assert.Equal(t, float64(50), SessionCapture.ComputeTotal(selection, table))
}

func TestComputeTotalEmptySelection(t *testing.T) {
	table := Models.PriceTable{"neck": 50}
	assert.Equal(t, float64(0), SessionCapture.ComputeTotal(SessionCapture.NewSelection(), table))
}

func TestComputeRemainingUnclamped(t *testing.T) {
	assert.Equal(t, float64(-50), SessionCapture.ComputeRemaining(150, 200))
	assert.Equal(t, float64(0), SessionCapture.ComputeRemaining(150, 150))
	assert.Equal(t, float64(100), SessionCapture.ComputeRemaining(150, 50))
}

func TestPaymentStatusFor(t *testing.T) {
	assert.Equal(t, SessionCapture.PaymentStatusPartial, SessionCapture.PaymentStatusFor(10))
	assert.Equal(t, SessionCapture.PaymentStatusFull, SessionCapture.PaymentStatusFor(0))
	// Overpayment folds into "full"; the raw remaining is surfaced alongside.
	assert.Equal(t, SessionCapture.PaymentStatusFull, SessionCapture.PaymentStatusFor(-50))
}

func TestApplyDiscount(t *testing.T) {
	assert.Equal(t, float64(90), SessionCapture.ApplyDiscount(100, 10))
	assert.Equal(t, float64(100), SessionCapture.ApplyDiscount(100, 0))
}

func TestNormalizePricesCoercesInvalidToZero(t *testing.T) {
	table := Models.NormalizePrices(map[string]interface{}{
		"neck":     float64(50),
		"left_arm": "100",
		"head":     "not a number",
		"chest":    nil,
	})

	assert.Equal(t, float64(50), table["neck"])
	assert.Equal(t, float64(100), table["left_arm"])
	assert.Equal(t, float64(0), table["head"])
	assert.Equal(t, float64(0), table["chest"])
}
