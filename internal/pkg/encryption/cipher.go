// AES encryption modes used by the API.
//
// Unlike the visualizer, which simulates rounds for display, everything
// here goes through crypto/aes and crypto/cipher.
package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/UmaisNisar/AES-Encryption-App/internal/pkg/encryption/padding"
)

var (
	ErrInvalidIV          = errors.New("invalid IV")
	ErrCiphertextTooShort = errors.New("ciphertext too short")
)

const (
	// BlockSize is the AES block size in bytes.
	BlockSize = aes.BlockSize

	// GCMNonceSize is the standard 96-bit GCM nonce length.
	GCMNonceSize = 12
)

// Mode is the contract every encryption mode implements. Encrypt
// generates its own IV (nil for modes that need none) and returns it
// alongside the ciphertext; Decrypt takes the same IV back.
type Mode interface {
	// Encrypt encrypts plaintext with the given key, returning the
	// ciphertext and the freshly generated IV.
	Encrypt(key, plaintext []byte) (ciphertext, iv []byte, err error)

	// Decrypt decrypts ciphertext with the given key and IV.
	Decrypt(key, ciphertext, iv []byte) ([]byte, error)

	// RequiresIV reports whether Decrypt needs an IV.
	RequiresIV() bool

	// Name returns the mode name
	Name() string
}

// GetMode returns a Mode implementation for the given mode name
func GetMode(name string) Mode {
	switch name {
	case "CBC":
		return &CBCMode{}
	case "GCM":
		return &GCMMode{}
	case "ECB":
		return &ECBMode{}
	default:
		return nil
	}
}

func randomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return nil, fmt.Errorf("failed to generate random bytes: %v", err)
	}
	return buf, nil
}

// CBCMode - Cipher Block Chaining with PKCS7 padding
type CBCMode struct{}

func (c *CBCMode) Name() string {
	return "CBC"
}

func (c *CBCMode) RequiresIV() bool {
	return true
}

func (c *CBCMode) Encrypt(key, plaintext []byte) ([]byte, []byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create AES cipher: %v", err)
	}

	iv, err := randomBytes(BlockSize)
	if err != nil {
		return nil, nil, err
	}

	padder := padding.GetPadder("PKCS7")
	padded := padder.Pad(plaintext, BlockSize)

	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return ciphertext, iv, nil
}

func (c *CBCMode) Decrypt(key, ciphertext, iv []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %v", err)
	}

	if len(iv) != BlockSize {
		return nil, ErrInvalidIV
	}
	if len(ciphertext) == 0 || len(ciphertext)%BlockSize != 0 {
		return nil, fmt.Errorf("ciphertext length must be multiple of block size (%d)", BlockSize)
	}

	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ciphertext)

	padder := padding.GetPadder("PKCS7")
	return padder.Unpad(padded)
}

// ECBMode - Electronic Codebook with PKCS7 padding (no IV).
// Kept for demonstration; identical blocks produce identical ciphertext.
type ECBMode struct{}

func (e *ECBMode) Name() string {
	return "ECB"
}

func (e *ECBMode) RequiresIV() bool {
	return false
}

func (e *ECBMode) Encrypt(key, plaintext []byte) ([]byte, []byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create AES cipher: %v", err)
	}

	padder := padding.GetPadder("PKCS7")
	padded := padder.Pad(plaintext, BlockSize)

	ciphertext := make([]byte, len(padded))
	for i := 0; i < len(padded); i += BlockSize {
		block.Encrypt(ciphertext[i:i+BlockSize], padded[i:i+BlockSize])
	}

	return ciphertext, nil, nil
}

func (e *ECBMode) Decrypt(key, ciphertext, iv []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %v", err)
	}

	if len(ciphertext) == 0 || len(ciphertext)%BlockSize != 0 {
		return nil, fmt.Errorf("ciphertext length must be multiple of block size (%d)", BlockSize)
	}

	padded := make([]byte, len(ciphertext))
	for i := 0; i < len(ciphertext); i += BlockSize {
		block.Decrypt(padded[i:i+BlockSize], ciphertext[i:i+BlockSize])
	}

	padder := padding.GetPadder("PKCS7")
	return padder.Unpad(padded)
}

// GCMMode - Galois/Counter Mode (authenticated, no padding)
type GCMMode struct{}

func (g *GCMMode) Name() string {
	return "GCM"
}

func (g *GCMMode) RequiresIV() bool {
	return true
}

func (g *GCMMode) Encrypt(key, plaintext []byte) ([]byte, []byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create AES cipher: %v", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create GCM: %v", err)
	}

	nonce, err := randomBytes(GCMNonceSize)
	if err != nil {
		return nil, nil, err
	}

	return gcm.Seal(nil, nonce, plaintext, nil), nonce, nil
}

func (g *GCMMode) Decrypt(key, ciphertext, iv []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %v", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %v", err)
	}

	if len(iv) != GCMNonceSize {
		return nil, ErrInvalidIV
	}
	if len(ciphertext) < gcm.Overhead() {
		return nil, ErrCiphertextTooShort
	}

	plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %v", err)
	}
	return plaintext, nil
}
