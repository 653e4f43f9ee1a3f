package session

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// CookieName is the browser cookie carrying the signed session ID.
const CookieName = "smartnotes_session"

func NewSessionID() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func sign(id, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(id))
	return hex.EncodeToString(mac.Sum(nil))
}

// EncodeCookie produces the tamper-evident cookie value "<id>.<signature>".
func EncodeCookie(id, secret string) string {
	return id + "." + sign(id, secret)
}

// DecodeCookie verifies the signature and returns the session ID.
// A forged or truncated value yields ok=false.
func DecodeCookie(value, secret string) (string, bool) {
	parts := strings.SplitN(value, ".", 2)
	if len(parts) != 2 || parts[0] == "" {
		return "", false
	}
	expected := sign(parts[0], secret)
	if !hmac.Equal([]byte(parts[1]), []byte(expected)) {
		return "", false
	}
	return parts[0], true
}
