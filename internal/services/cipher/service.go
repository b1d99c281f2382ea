// Cipher service implementation
package cipher

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/UmaisNisar/AES-Encryption-App/internal/pkg/encryption"
	"github.com/UmaisNisar/AES-Encryption-App/internal/pkg/helpers"
	"github.com/UmaisNisar/AES-Encryption-App/internal/protocol"
)

var (
	ErrInvalidKeySize = errors.New("key size must be 128, 192, or 256 bits")
	ErrInvalidMode    = errors.New("mode must be CBC, GCM, or ECB")
	ErrMissingIV      = errors.New("IV is required for this mode")
)

// Service performs real AES encryption and decryption through
// crypto/aes, independent of the visualization trace.
type Service struct {
	logger *helpers.Logger
}

// New creates a new cipher service
func New() *Service {
	return &Service{
		logger: helpers.NewLogger("Cipher"),
	}
}

// Encrypt encrypts the request plaintext and reports timing in ms.
func (s *Service) Encrypt(req *protocol.EncryptionRequest) (*protocol.EncryptionResponse, error) {
	start := time.Now()

	if !protocol.ValidKeySize(req.KeySize) {
		return nil, ErrInvalidKeySize
	}
	if !protocol.ValidMode(req.Mode) {
		return nil, ErrInvalidMode
	}

	key := encryption.DecodeKey(req.Key, req.KeySize)
	mode := encryption.GetMode(req.Mode)

	ciphertext, iv, err := mode.Encrypt(key, []byte(req.Plaintext))
	if err != nil {
		s.logger.Error("encryption failed", err, "mode", req.Mode)
		return nil, fmt.Errorf("encryption error: %v", err)
	}

	resp := &protocol.EncryptionResponse{
		Ciphertext:      base64.StdEncoding.EncodeToString(ciphertext),
		ExecutionTimeMs: float64(time.Since(start).Microseconds()) / 1000.0,
		KeySize:         req.KeySize,
		Mode:            req.Mode,
	}
	if iv != nil {
		resp.IV = base64.StdEncoding.EncodeToString(iv)
	}
	return resp, nil
}

// Decrypt decrypts the request ciphertext and reports timing in ms.
func (s *Service) Decrypt(req *protocol.DecryptionRequest) (*protocol.DecryptionResponse, error) {
	start := time.Now()

	if !protocol.ValidKeySize(req.KeySize) {
		return nil, ErrInvalidKeySize
	}
	if !protocol.ValidMode(req.Mode) {
		return nil, ErrInvalidMode
	}

	key := encryption.DecodeKey(req.Key, req.KeySize)
	mode := encryption.GetMode(req.Mode)

	ciphertext, err := base64.StdEncoding.DecodeString(req.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("invalid ciphertext base64: %v", err)
	}

	var iv []byte
	if mode.RequiresIV() {
		if req.IV == "" {
			return nil, ErrMissingIV
		}
		iv, err = base64.StdEncoding.DecodeString(req.IV)
		if err != nil {
			return nil, fmt.Errorf("invalid IV base64: %v", err)
		}
	}

	plaintext, err := mode.Decrypt(key, ciphertext, iv)
	if err != nil {
		s.logger.Error("decryption failed", err, "mode", req.Mode)
		return nil, fmt.Errorf("decryption error: %v", err)
	}

	return &protocol.DecryptionResponse{
		Plaintext:       string(plaintext),
		ExecutionTimeMs: float64(time.Since(start).Microseconds()) / 1000.0,
		KeySize:         req.KeySize,
		Mode:            req.Mode,
	}, nil
}
