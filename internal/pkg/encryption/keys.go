package encryption

import (
	"encoding/base64"
	"encoding/hex"
)

// DecodeKey turns the key string from a request into keySize/8 raw
// bytes. Base64 is tried first, then hex; either wins only if it
// decodes to exactly the requested size. Otherwise the raw UTF-8 bytes
// of the string are truncated or zero-padded to fit. The zero padding
// is obviously not secure, but this is a demo API and the fallback
// keeps arbitrary typed-in keys working.
func DecodeKey(key string, keySize int) []byte {
	size := keySize / 8

	if decoded, err := base64.StdEncoding.DecodeString(key); err == nil && len(decoded) == size {
		return decoded
	}

	if decoded, err := hex.DecodeString(key); err == nil && len(decoded) == size {
		return decoded
	}

	keyBytes := []byte(key)
	if len(keyBytes) > size {
		return keyBytes[:size]
	}
	padded := make([]byte, size)
	copy(padded, keyBytes)
	return padded
}
