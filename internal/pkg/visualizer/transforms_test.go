package visualizer

import "testing"

func testMatrix() Matrix {
	var m Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m[i][j] = byte(i*53 + j*19 + 7)
		}
	}
	return m
}

func TestSBoxIsBijection(t *testing.T) {
	var seen [256]bool
	for i := 0; i < 256; i++ {
		v := sBox[i]
		if seen[v] {
			t.Fatalf("duplicate S-Box value 0x%02x at index %d", v, i)
		}
		seen[v] = true
	}
}

func TestSBoxKnownValues(t *testing.T) {
	// Corners of the published Rijndael table.
	if sBox[0x00] != 0x63 {
		t.Fatalf("sBox[0x00] = 0x%02x, want 0x63", sBox[0x00])
	}
	if sBox[0x01] != 0x7c {
		t.Fatalf("sBox[0x01] = 0x%02x, want 0x7c", sBox[0x01])
	}
	if sBox[0x53] != 0xed {
		t.Fatalf("sBox[0x53] = 0x%02x, want 0xed", sBox[0x53])
	}
	if sBox[0xff] != 0x16 {
		t.Fatalf("sBox[0xff] = 0x%02x, want 0x16", sBox[0xff])
	}
}

func TestSubBytes(t *testing.T) {
	m := testMatrix()
	out := SubBytes(m)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if out[i][j] != sBox[m[i][j]] {
				t.Fatalf("cell [%d][%d]: got 0x%02x, want 0x%02x", i, j, out[i][j], sBox[m[i][j]])
			}
		}
	}
}

func TestShiftRowsOffsets(t *testing.T) {
	m := testMatrix()
	out := ShiftRows(m)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if out[i][j] != m[i][(j+i)%4] {
				t.Fatalf("row %d not rotated left by %d: %v", i, i, out[i])
			}
		}
	}
	if out[0] != m[0] {
		t.Fatalf("row 0 must be unchanged")
	}
}

func TestShiftRowsFourTimesIsIdentity(t *testing.T) {
	m := testMatrix()
	out := ShiftRows(ShiftRows(ShiftRows(ShiftRows(m))))
	if out != m {
		t.Fatalf("four rotations should restore the matrix: got %v, want %v", out, m)
	}
}

func TestMixColumnsCollapsesColumns(t *testing.T) {
	m := testMatrix()
	out := MixColumns(m)
	for c := 0; c < 4; c++ {
		want := m[0][c] ^ m[1][c] ^ m[2][c] ^ m[3][c]
		for r := 0; r < 4; r++ {
			if out[r][c] != want {
				t.Fatalf("column %d row %d: got 0x%02x, want XOR of column 0x%02x", c, r, out[r][c], want)
			}
		}
	}
}

func TestAddRoundKeyIsInvolution(t *testing.T) {
	m := testMatrix()
	rk := BlockToMatrix([BlockSize]byte{9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 255, 254, 253, 252, 251, 250})

	out := AddRoundKey(AddRoundKey(m, rk), rk)
	if out != m {
		t.Fatalf("double XOR should restore the matrix: got %v, want %v", out, m)
	}
}
