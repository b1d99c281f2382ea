package padding

import (
	"fmt"
)

// Padder interface defines the padding contract
type Padder interface {
	Pad(data []byte, blockSize int) []byte
	Unpad(data []byte) ([]byte, error)
	Name() string
}

// PKCS7Padding - PKCS#7 padding scheme
type PKCS7Padding struct{}

func (p *PKCS7Padding) Name() string {
	return "PKCS7"
}

func (p *PKCS7Padding) Pad(data []byte, blockSize int) []byte {
	paddingLen := blockSize - (len(data) % blockSize)
	if paddingLen == 0 {
		paddingLen = blockSize
	}
	padding := make([]byte, paddingLen)
	for i := 0; i < paddingLen; i++ {
		padding[i] = byte(paddingLen)
	}
	return append(data, padding...)
}

func (p *PKCS7Padding) Unpad(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("invalid padded data")
	}

	paddingLen := int(data[len(data)-1])
	if paddingLen > len(data) || paddingLen == 0 {
		return nil, fmt.Errorf("invalid padding length")
	}

	// Verify padding
	for i := len(data) - paddingLen; i < len(data); i++ {
		if data[i] != byte(paddingLen) {
			return nil, fmt.Errorf("invalid padding")
		}
	}

	return data[:len(data)-paddingLen], nil
}

// GetPadder returns a Padder implementation for the given padding name
func GetPadder(paddingName string) Padder {
	switch paddingName {
	case "PKCS7":
		return &PKCS7Padding{}
	default:
		return nil
	}
}
