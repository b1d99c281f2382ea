package visualizer

// Matrix is the 4x4 AES state. Value semantics: every transform takes a
// Matrix and returns a new one, nothing is mutated in place.
type Matrix [4][4]byte

// BlockSize is the AES block size in bytes.
const BlockSize = 16

// BlockToMatrix converts a 16-byte block to a 4x4 state matrix in
// column-major order: byte i lands in row i%4, column i/4.
func BlockToMatrix(block [BlockSize]byte) Matrix {
	var m Matrix
	for i := 0; i < BlockSize; i++ {
		m[i%4][i/4] = block[i]
	}
	return m
}

// MatrixToBlock is the exact inverse of BlockToMatrix.
func MatrixToBlock(m Matrix) [BlockSize]byte {
	var block [BlockSize]byte
	for i := 0; i < BlockSize; i++ {
		block[i] = m[i%4][i/4]
	}
	return block
}
