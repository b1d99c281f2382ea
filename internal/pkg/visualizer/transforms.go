package visualizer

// SubBytes replaces every byte of the state through the S-Box.
func SubBytes(m Matrix) Matrix {
	var out Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = sBox[m[i][j]]
		}
	}
	return out
}

// ShiftRows rotates row r left by r positions.
func ShiftRows(m Matrix) Matrix {
	var out Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = m[i][(j+i)%4]
		}
	}
	return out
}

// MixColumns XORs the four bytes of each column together. Since XOR is
// commutative this collapses every column to four identical values.
// That is the documented behavior of this visualizer, inherited as-is;
// real AES mixes columns with GF(2^8) multiplication instead.
func MixColumns(m Matrix) Matrix {
	var out Matrix
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[r][c] = m[r][c] ^ m[(r+1)%4][c] ^ m[(r+2)%4][c] ^ m[(r+3)%4][c]
		}
	}
	return out
}

// AddRoundKey XORs the state with a round-key matrix.
func AddRoundKey(m, rk Matrix) Matrix {
	var out Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = m[i][j] ^ rk[i][j]
		}
	}
	return out
}
