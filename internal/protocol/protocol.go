package protocol

import (
	"github.com/UmaisNisar/AES-Encryption-App/internal/pkg/visualizer"
)

// EncryptionMode type for the supported AES block modes
type EncryptionMode string

const (
	CBC EncryptionMode = "CBC"
	GCM EncryptionMode = "GCM"
	ECB EncryptionMode = "ECB"
)

// ValidMode reports whether the mode string is one the API supports.
func ValidMode(mode string) bool {
	switch EncryptionMode(mode) {
	case CBC, GCM, ECB:
		return true
	}
	return false
}

// ValidKeySize reports whether the key size in bits is a legal AES size.
func ValidKeySize(bits int) bool {
	return bits == 128 || bits == 192 || bits == 256
}

// EncryptionRequest is the body of POST /encrypt
type EncryptionRequest struct {
	Plaintext string `json:"plaintext"`
	Key       string `json:"key"`      // base64, hex, or raw passphrase
	KeySize   int    `json:"key_size"` // bits: 128, 192 or 256
	Mode      string `json:"mode"`     // CBC, GCM or ECB
}

// EncryptionResponse is the result of POST /encrypt
type EncryptionResponse struct {
	Ciphertext      string  `json:"ciphertext"`   // base64
	IV              string  `json:"iv,omitempty"` // base64, absent for ECB
	ExecutionTimeMs float64 `json:"execution_time_ms"`
	KeySize         int     `json:"key_size"`
	Mode            string  `json:"mode"`
}

// DecryptionRequest is the body of POST /decrypt
type DecryptionRequest struct {
	Ciphertext string `json:"ciphertext"` // base64
	Key        string `json:"key"`
	KeySize    int    `json:"key_size"`
	Mode       string `json:"mode"`
	IV         string `json:"iv,omitempty"` // base64, required for CBC/GCM
}

// DecryptionResponse is the result of POST /decrypt
type DecryptionResponse struct {
	Plaintext       string  `json:"plaintext"`
	ExecutionTimeMs float64 `json:"execution_time_ms"`
	KeySize         int     `json:"key_size"`
	Mode            string  `json:"mode"`
}

// VisualizationRequest is the body of POST /visualize. Only the first
// 16 plaintext bytes are visualized; key_size selects the round count.
type VisualizationRequest struct {
	Plaintext string `json:"plaintext"`
	Key       string `json:"key"`
	KeySize   int    `json:"key_size"`
}

// VisualizationResponse carries the ordered step trace for the UI.
type VisualizationResponse struct {
	Steps         []visualizer.Step `json:"steps"`
	CiphertextHex string            `json:"ciphertext_hex"`
	KeySize       int               `json:"key_size"`
	Rounds        int               `json:"rounds"`
}
