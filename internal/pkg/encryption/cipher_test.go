package encryption

import (
	"bytes"
	"testing"
)

var (
	testKey128 = []byte("0123456789ABCDEF")                 // 16 bytes
	testKey256 = []byte("0123456789ABCDEF0123456789ABCDEF") // 32 bytes
)

func TestCBCRoundTrip(t *testing.T) {
	mode := GetMode("CBC")
	plaintext := []byte("Hello, World! This spans more than one block.")

	ciphertext, iv, err := mode.Encrypt(testKey128, plaintext)
	if err != nil {
		t.Fatalf("CBC encryption failed: %v", err)
	}
	if len(iv) != BlockSize {
		t.Fatalf("CBC IV must be %d bytes, got %d", BlockSize, len(iv))
	}
	if len(ciphertext)%BlockSize != 0 {
		t.Fatalf("CBC ciphertext length %d not block aligned", len(ciphertext))
	}

	decrypted, err := mode.Decrypt(testKey128, ciphertext, iv)
	if err != nil {
		t.Fatalf("CBC decryption failed: %v", err)
	}
	if !bytes.Equal(plaintext, decrypted) {
		t.Fatalf("CBC round-trip failed: expected %q, got %q", plaintext, decrypted)
	}
}

func TestCBCRejectsBadIV(t *testing.T) {
	mode := GetMode("CBC")
	ciphertext, _, err := mode.Encrypt(testKey128, []byte("payload"))
	if err != nil {
		t.Fatalf("encryption failed: %v", err)
	}

	if _, err := mode.Decrypt(testKey128, ciphertext, []byte("short")); err == nil {
		t.Fatal("decryption with a short IV must fail")
	}
}

func TestECBRoundTrip(t *testing.T) {
	mode := GetMode("ECB")
	plaintext := []byte("Hello, World!!!!")

	ciphertext, iv, err := mode.Encrypt(testKey256, plaintext)
	if err != nil {
		t.Fatalf("ECB encryption failed: %v", err)
	}
	if iv != nil {
		t.Fatalf("ECB must not produce an IV, got %d bytes", len(iv))
	}

	decrypted, err := mode.Decrypt(testKey256, ciphertext, nil)
	if err != nil {
		t.Fatalf("ECB decryption failed: %v", err)
	}
	if !bytes.Equal(plaintext, decrypted) {
		t.Fatalf("ECB round-trip failed: expected %q, got %q", plaintext, decrypted)
	}
}

func TestECBIsDeterministic(t *testing.T) {
	mode := GetMode("ECB")
	plaintext := []byte("same block input")

	a, _, err := mode.Encrypt(testKey128, plaintext)
	if err != nil {
		t.Fatalf("encryption failed: %v", err)
	}
	b, _, err := mode.Encrypt(testKey128, plaintext)
	if err != nil {
		t.Fatalf("encryption failed: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatal("ECB must be deterministic for identical inputs")
	}
}

func TestGCMRoundTrip(t *testing.T) {
	mode := GetMode("GCM")
	plaintext := []byte("authenticated message")

	ciphertext, nonce, err := mode.Encrypt(testKey256, plaintext)
	if err != nil {
		t.Fatalf("GCM encryption failed: %v", err)
	}
	if len(nonce) != GCMNonceSize {
		t.Fatalf("GCM nonce must be %d bytes, got %d", GCMNonceSize, len(nonce))
	}

	decrypted, err := mode.Decrypt(testKey256, ciphertext, nonce)
	if err != nil {
		t.Fatalf("GCM decryption failed: %v", err)
	}
	if !bytes.Equal(plaintext, decrypted) {
		t.Fatalf("GCM round-trip failed: expected %q, got %q", plaintext, decrypted)
	}
}

func TestGCMDetectsTampering(t *testing.T) {
	mode := GetMode("GCM")
	ciphertext, nonce, err := mode.Encrypt(testKey128, []byte("integrity matters"))
	if err != nil {
		t.Fatalf("encryption failed: %v", err)
	}

	ciphertext[0] ^= 0x01
	if _, err := mode.Decrypt(testKey128, ciphertext, nonce); err == nil {
		t.Fatal("tampered GCM ciphertext must fail to decrypt")
	}
}

func TestGetModeUnknown(t *testing.T) {
	if m := GetMode("CTR"); m != nil {
		t.Fatalf("unexpected mode for unknown name: %v", m.Name())
	}
}

func TestDecodeKeyBase64(t *testing.T) {
	// base64 of the 16-byte string "0123456789ABCDEF"
	key := DecodeKey("MDEyMzQ1Njc4OUFCQ0RFRg==", 128)
	if !bytes.Equal(key, testKey128) {
		t.Fatalf("base64 decode failed: got %q", key)
	}
}

func TestDecodeKeyHex(t *testing.T) {
	key := DecodeKey("00112233445566778899aabbccddeeff", 128)
	want := []byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}
	if !bytes.Equal(key, want) {
		t.Fatalf("hex decode failed: got %x", key)
	}
}

func TestDecodeKeyRawFallback(t *testing.T) {
	// Too short for 128 bits: zero-padded.
	key := DecodeKey("secret", 128)
	if len(key) != 16 || !bytes.HasPrefix(key, []byte("secret")) {
		t.Fatalf("raw fallback pad failed: %q", key)
	}
	for _, b := range key[6:] {
		if b != 0 {
			t.Fatalf("expected zero padding, got %q", key)
		}
	}

	// Too long: truncated.
	key = DecodeKey("this passphrase is much longer than sixteen bytes", 128)
	if string(key) != "this passphrase " {
		t.Fatalf("raw fallback truncate failed: %q", key)
	}
}

func TestDecodeKeySizeMismatchFallsThrough(t *testing.T) {
	// Valid hex, but 16 bytes while 256 bits were requested: the hex
	// branch must not win, so the raw 32-character string is used.
	s := "00112233445566778899aabbccddeeff"
	key := DecodeKey(s, 256)
	if string(key) != s {
		t.Fatalf("expected raw fallback, got %x", key)
	}
}
