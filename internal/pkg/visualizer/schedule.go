package visualizer

// ExpandKey derives rounds+1 round-key matrices from a 16-byte key.
// The schedule is deliberately simple: each round key is the key matrix
// shifted by an additive offset so every round looks distinct on screen.
// It is not the real AES key schedule and provides no diffusion.
//
//	rk[r][i][j] = (key[i][j] + r*16 + i*4 + j) mod 256
func ExpandKey(key [BlockSize]byte, rounds int) []Matrix {
	keyMatrix := BlockToMatrix(key)

	roundKeys := make([]Matrix, 0, rounds+1)
	for r := 0; r <= rounds; r++ {
		var rk Matrix
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				rk[i][j] = byte(int(keyMatrix[i][j]) + r*16 + i*4 + j)
			}
		}
		roundKeys = append(roundKeys, rk)
	}
	return roundKeys
}
