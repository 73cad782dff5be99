package acquire_hold

import (
	"crypto/rand"
	"encoding/hex"
)

// newHoldID возвращает непрозрачный уникальный токен hold'а
func newHoldID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	return hex.EncodeToString(b)
}
