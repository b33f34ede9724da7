package Models

type NotificationRequest struct {
	Tokens []string `json:"tokens"` // Multiple device tokens
	Title  string   `json:"title"`
	Body   string   `json:"body"`
}
