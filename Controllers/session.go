package Controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"EnasClinic/FirebaseMessaging"
	"EnasClinic/Models"
	"EnasClinic/SSE"
	"EnasClinic/SessionCapture"
	"EnasClinic/Stores"
	"EnasClinic/Utils/Token"

	"github.com/gin-gonic/gin"
)

var (
	Store   *Stores.GormStore
	Capture *SessionCapture.Manager
)

// SetupSessionCapture wires the session gateway and the per-operator capture
// views. Call after ConnectDataBase.
func SetupSessionCapture() {
	Store = Stores.NewGormStore(Models.DB)
	Capture = SessionCapture.NewManager(func() *SessionCapture.CaptureView {
		recorder := &SessionCapture.Recorder{
			Store: Store,
			OnRecorded: func(record Models.SessionRecord) {
				SSE.Updates.BroadcastSessions(record.ClientID)
			},
		}
		return SessionCapture.NewCaptureView(recorder, Store)
	})
}

func captureView(c *gin.Context) (*SessionCapture.CaptureView, bool) {
	user_id, err := Token.ExtractTokenID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return nil, false
	}
	return Capture.View(user_id), true
}

func ToggleRegion(c *gin.Context) {
	var input struct {
		Region string `json:"region" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !Models.RegionExists(input.Region) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown region"})
		return
	}

	view, ok := captureView(c)
	if !ok {
		return
	}

	if err := view.Toggle(input.Region); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state":    view.CurrentState().String(),
		"selected": view.Selected(),
	})
}

func ClearSelection(c *gin.Context) {
	view, ok := captureView(c)
	if !ok {
		return
	}

	if err := view.ClearSelection(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"state": view.CurrentState().String()})
}

func FetchSelection(c *gin.Context) {
	view, ok := captureView(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state":    view.CurrentState().String(),
		"selected": view.Selected(),
	})
}

func OpenCaptureForm(c *gin.Context) {
	view, ok := captureView(c)
	if !ok {
		return
	}

	table, total, err := view.OpenForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state":    view.CurrentState().String(),
		"selected": view.Selected(),
		"prices":   table,
		"total":    total,
	})
}

func CancelCapture(c *gin.Context) {
	view, ok := captureView(c)
	if !ok {
		return
	}

	view.Cancel()
	c.JSON(http.StatusOK, gin.H{"state": view.CurrentState().String()})
}

func SubmitCapture(c *gin.Context) {
	var input struct {
		ClientID uint `json:"client_id" binding:"required"`
		SessionCapture.CaptureForm
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, ok := captureView(c)
	if !ok {
		return
	}

	client, err := Store.Client(input.ClientID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Client not found"})
		return
	}

	result, err := view.Submit(client, input.CaptureForm)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "result": result})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sessions Recorded Successfully", "result": result})

	SSE.Updates.Broadcast("refresh")
	fcms, _ := Models.GetStaffFCMs()
	if len(fcms) > 0 {
		FirebaseMessaging.SendMessage(Models.NotificationRequest{
			Tokens: fcms,
			Title:  "Sessions Recorded",
			Body:   fmt.Sprintf("%d session(s) recorded for %s with a total of %v", result.Recorded, client.Name, result.Total),
		})
	}
}

func FetchClientSessions(c *gin.Context) {
	var input struct {
		ClientID uint `json:"client_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	records, err := Store.GetOnce(input.ClientID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, SessionCapture.GroupRecords(records))
}

func FetchRecentSessions(c *gin.Context) {
	var input struct {
		ClientID uint `json:"client_id"`
		Limit    int  `json:"limit"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	feed := SessionCapture.OpenFeed(Store, input.ClientID)
	defer feed.Close()

	c.JSON(http.StatusOK, feed.Recent(input.Limit))
}

// StreamClientSessions holds a standing subscription on one client's session
// collection and streams the regrouped snapshot on every change. The
// subscription is released whenever the request exits.
func StreamClientSessions(c *gin.Context) {
	clientID, err := strconv.ParseUint(c.Query("client_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "client_id is required"})
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	updates := make(chan []Models.SessionRecord, 1)
	unsubscribe := Store.Subscribe(uint(clientID), func(records []Models.SessionRecord) {
		select {
		case updates <- records:
		default:
		}
	})
	defer unsubscribe()

	for {
		select {
		case records := <-updates:
			payload, err := json.Marshal(SessionCapture.GroupRecords(records))
			if err != nil {
				continue
			}
			fmt.Fprintf(c.Writer, "data: %s\n\n", payload)
			c.Writer.Flush()
		case <-c.Writer.CloseNotify():
			// Client disconnected
			return
		}
	}
}

// captureEvents collapses per-region records back into their capture events
// so payment figures are not multiplied by the region count.
func captureEvents(records []Models.SessionRecord) []Models.SessionRecord {
	seen := make(map[string]bool)
	var events []Models.SessionRecord
	for _, record := range records {
		if record.CaptureID == "" || !seen[record.CaptureID] {
			seen[record.CaptureID] = true
			events = append(events, record)
		}
	}
	return events
}

func FetchOutstandingBalances(c *gin.Context) {
	var records []Models.SessionRecord
	if err := Models.DB.Model(&Models.SessionRecord{}).
		Where("remaining > 0").
		Order("created_at asc").
		Find(&records).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	type Balance struct {
		ClientID    uint    `json:"client_id"`
		ClientName  string  `json:"client_name"`
		Outstanding float64 `json:"outstanding"`
	}

	byClient := make(map[uint]*Balance)
	for _, event := range captureEvents(records) {
		balance, ok := byClient[event.ClientID]
		if !ok {
			balance = &Balance{ClientID: event.ClientID, ClientName: event.ClientName}
			byClient[event.ClientID] = balance
		}
		balance.Outstanding += event.Remaining
	}

	balances := make([]Balance, 0, len(byClient))
	for _, balance := range byClient {
		balances = append(balances, *balance)
	}
	c.JSON(http.StatusOK, balances)
}

func FetchPaymentSummary(c *gin.Context) {
	var input struct {
		DateFrom string `json:"date_from"`
		DateTo   string `json:"date_to"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query := Models.DB.Model(&Models.SessionRecord{}).Order("created_at asc")
	if input.DateFrom != "" && input.DateTo != "" {
		query = query.Where("date BETWEEN ? AND ?", input.DateFrom, input.DateTo)
	}

	var records []Models.SessionRecord
	if err := query.Find(&records).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var billed, collected, outstanding float64
	events := captureEvents(records)
	for _, event := range events {
		billed += event.TotalPrice
		collected += event.Paid
		outstanding += event.Remaining
	}

	c.JSON(http.StatusOK, gin.H{
		"sessions":       len(records),
		"capture_events": len(events),
		"billed":         billed,
		"collected":      collected,
		"outstanding":    outstanding,
	})
}
