// Step-by-step AES round simulation for the frontend visualizer.
//
// The package walks one 16-byte block through the AES round structure
// (SubBytes, ShiftRows, MixColumns, AddRoundKey) and records a snapshot
// of the state matrix after every operation. The arithmetic inside the
// transforms is simplified for legibility; the real encryption the API
// returns comes from crypto/aes, not from here.
package visualizer

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrInvalidKeySize is returned when the requested key size is not one
// of 128, 192 or 256 bits.
var ErrInvalidKeySize = errors.New("key size must be 128, 192, or 256 bits")

// roundsForKeySize maps key size in bits to the AES round count.
var roundsForKeySize = map[int]int{
	128: 10,
	192: 12,
	256: 14,
}

// Rounds returns the round count for a key size in bits, and whether
// the key size is valid.
func Rounds(keySize int) (int, bool) {
	r, ok := roundsForKeySize[keySize]
	return r, ok
}

// Step is one recorded state of the simulation. State holds every byte
// as a "0x%02x" string, ready for direct JSON serialization to the
// frontend. Round is 0 (and omitted) for the initial bookkeeping steps
// and the final ciphertext step. CiphertextHex is set only on the last
// step.
type Step struct {
	Index         int          `json:"step"`
	Operation     string       `json:"operation"`
	Description   string       `json:"description"`
	State         [4][4]string `json:"state"`
	Color         string       `json:"color"`
	Round         int          `json:"round,omitempty"`
	CiphertextHex string       `json:"ciphertext_hex,omitempty"`
}

// Colors used to group steps in the UI.
const (
	colorGray   = "gray"
	colorRed    = "red"
	colorBlue   = "blue"
	colorPurple = "purple"
	colorGreen  = "green"
	colorCyan   = "cyan"
)

func renderMatrix(m Matrix) [4][4]string {
	var out [4][4]string
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = fmt.Sprintf("0x%02x", m[i][j])
		}
	}
	return out
}

// BuildTrace simulates AES encryption of one block and returns the full
// ordered step list. The block must already be normalized to 16 bytes
// and only the first 16 key bytes enter the schedule; keySize selects
// the round count alone. The returned slice is freshly allocated per
// call, so concurrent invocations are independent.
func BuildTrace(block, key [BlockSize]byte, keySize int) ([]Step, error) {
	rounds, ok := roundsForKeySize[keySize]
	if !ok {
		return nil, ErrInvalidKeySize
	}

	state := BlockToMatrix(block)
	roundKeys := ExpandKey(key, rounds)

	steps := make([]Step, 0, 4*rounds+2)
	record := func(op, desc, color string, round int) {
		steps = append(steps, Step{
			Index:       len(steps),
			Operation:   op,
			Description: desc,
			State:       renderMatrix(state),
			Color:       color,
			Round:       round,
		})
	}

	record("Initial State", "Plaintext block converted to 4x4 state matrix", colorGray, 0)

	state = AddRoundKey(state, roundKeys[0])
	record("AddRoundKey (Initial)", "XOR state with initial round key (Key Schedule Round 0)", colorRed, 0)

	for round := 1; round < rounds; round++ {
		state = SubBytes(state)
		record(fmt.Sprintf("SubBytes (Round %d)", round),
			"Each byte is replaced using S-Box lookup table", colorBlue, round)

		state = ShiftRows(state)
		record(fmt.Sprintf("ShiftRows (Round %d)", round),
			"Each row is cyclically shifted to the left", colorPurple, round)

		state = MixColumns(state)
		record(fmt.Sprintf("MixColumns (Round %d)", round),
			"Columns are mixed using Galois field multiplication", colorGreen, round)

		state = AddRoundKey(state, roundKeys[round])
		record(fmt.Sprintf("AddRoundKey (Round %d)", round),
			"XOR state with round key", colorRed, round)
	}

	// Final round skips MixColumns.
	state = SubBytes(state)
	record("SubBytes (Final Round)", "Each byte is replaced using S-Box lookup table", colorBlue, rounds)

	state = ShiftRows(state)
	record("ShiftRows (Final Round)", "Each row is cyclically shifted to the left", colorPurple, rounds)

	state = AddRoundKey(state, roundKeys[rounds])
	record("AddRoundKey (Final Round)", "XOR state with final round key", colorRed, rounds)

	ciphertext := MatrixToBlock(state)
	steps = append(steps, Step{
		Index:         len(steps),
		Operation:     "Ciphertext",
		Description:   "Final encrypted block (16 bytes)",
		State:         renderMatrix(state),
		Color:         colorCyan,
		CiphertextHex: hex.EncodeToString(ciphertext[:]),
	})

	return steps, nil
}
