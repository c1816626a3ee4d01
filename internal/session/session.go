package session

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

// QRPrefix marks a scannable payload as one of ours.
const QRPrefix = "ScanToServe_AppID_"

const (
	appCodeLength  = 5
	appCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// Session is one device's connection to the ordering app, identified by
// a short app code that travels inside the QR payload.
type Session struct {
	AppCode     string     `json:"app_code"`
	CreatedAt   time.Time  `json:"created_at"`
	ConnectedAt *time.Time `json:"connected_at,omitempty"`
}

// NewAppCode generates a short random code for QR pairing.
func NewAppCode() string {
	var b strings.Builder
	for i := 0; i < appCodeLength; i++ {
		b.WriteByte(appCodeCharset[rand.IntN(len(appCodeCharset))])
	}
	return b.String()
}

// QRPayload returns the text encoded into the session's QR code.
func (s *Session) QRPayload() string {
	return QRPrefix + s.AppCode
}

// Connected reports whether a device has scanned into the session.
func (s *Session) Connected() bool {
	return s.ConnectedAt != nil
}

// ParseQRPayload extracts the app code from a scanned payload. Payloads
// without our prefix or with a malformed code are rejected.
func ParseQRPayload(payload string) (string, error) {
	if !strings.HasPrefix(payload, QRPrefix) {
		return "", fmt.Errorf("not a recognized QR payload")
	}
	code := strings.TrimPrefix(payload, QRPrefix)
	if len(code) != appCodeLength {
		return "", fmt.Errorf("malformed app code %q", code)
	}
	for _, r := range code {
		if !strings.ContainsRune(appCodeCharset, r) {
			return "", fmt.Errorf("malformed app code %q", code)
		}
	}
	return code, nil
}
