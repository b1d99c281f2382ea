// Visualizer service implementation
package visualizer

import (
	"github.com/UmaisNisar/AES-Encryption-App/internal/pkg/encryption"
	"github.com/UmaisNisar/AES-Encryption-App/internal/pkg/helpers"
	vis "github.com/UmaisNisar/AES-Encryption-App/internal/pkg/visualizer"
	"github.com/UmaisNisar/AES-Encryption-App/internal/protocol"
)

// Service turns visualization requests into step traces. It owns the
// request-boundary duties the trace core refuses to do: normalizing
// the plaintext to one 16-byte block and decoding the key string.
type Service struct {
	logger *helpers.Logger
}

// New creates a new visualizer service
func New() *Service {
	return &Service{
		logger: helpers.NewLogger("Visualizer"),
	}
}

// NormalizeBlock truncates the UTF-8 plaintext to its first 16 bytes,
// zero-padding shorter inputs.
func NormalizeBlock(plaintext string) [vis.BlockSize]byte {
	var block [vis.BlockSize]byte
	copy(block[:], plaintext)
	return block
}

// Visualize builds the full step trace for one plaintext block.
// Regardless of key size only the first 16 decoded key bytes feed the
// round-key schedule; the key size just picks the round count.
func (s *Service) Visualize(req *protocol.VisualizationRequest) (*protocol.VisualizationResponse, error) {
	rounds, ok := vis.Rounds(req.KeySize)
	if !ok {
		return nil, vis.ErrInvalidKeySize
	}

	keyBytes := encryption.DecodeKey(req.Key, req.KeySize)
	var key [vis.BlockSize]byte
	copy(key[:], keyBytes)

	block := NormalizeBlock(req.Plaintext)

	steps, err := vis.BuildTrace(block, key, req.KeySize)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("trace built", "steps", len(steps), "key_size", req.KeySize)

	return &protocol.VisualizationResponse{
		Steps:         steps,
		CiphertextHex: steps[len(steps)-1].CiphertextHex,
		KeySize:       req.KeySize,
		Rounds:        rounds,
	}, nil
}
