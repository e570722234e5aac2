// Package flash implements one-shot messages carried across a redirect in a
// short-lived cookie, mirroring the flash semantics of classic server-side
// web frameworks.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

const cookieName = "flash"

// Message is a user-visible notice with a severity tag.
type Message struct {
	Message string `json:"message"`
	Level   string `json:"level"` // success, info, warning, error
}

// Set queues a message for the next request.
func Set(c *gin.Context, message, level string) {
	payload, err := json.Marshal(Message{Message: message, Level: level})
	if err != nil {
		return
	}
	encoded := base64.RawURLEncoding.EncodeToString(payload)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookieName, encoded, 60, "/", "", false, true)
}

// Take returns the pending message, if any, and clears it.
func Take(c *gin.Context) *Message {
	encoded, err := c.Cookie(cookieName)
	if err != nil || encoded == "" {
		return nil
	}
	c.SetCookie(cookieName, "", -1, "/", "", false, true)
	return Decode(encoded)
}

// Decode parses an encoded flash cookie value, returning nil when it does
// not hold a valid message.
func Decode(encoded string) *Message {
	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil
	}
	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		return nil
	}
	return &msg
}
