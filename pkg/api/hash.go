package api

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Fingerprint returns a short BLAKE3 digest of the request.
// Logs carry the fingerprint instead of the prompt text.
func (r GenerationRequest) Fingerprint() string {
	h := blake3.New()
	_, _ = h.Write([]byte(r.Model))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(r.Prompt))
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:8])
}
