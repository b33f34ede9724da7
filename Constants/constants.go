package Constants

import "os"

var WhatsappGoService = getenv("WHATSAPP_GO_SERVICE", "http://localhost:3000")

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
