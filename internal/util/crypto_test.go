package util

import (
	"strings"
	"testing"
)

func TestEncryptDecryptAES(t *testing.T) {
	key := "test-encryption-key"

	testCases := []string{
		"Hello World",
		"",
		"Special!@#$%^&*()",
		strings.Repeat("A", 1000),
	}

	for _, plaintext := range testCases {
		encrypted, err := EncryptAES(key, []byte(plaintext))
		if err != nil {
			t.Fatalf("EncryptAES(%q) error = %v", plaintext, err)
		}

		decrypted, err := DecryptAES(key, encrypted)
		if err != nil {
			t.Fatalf("DecryptAES(%q) error = %v", plaintext, err)
		}

		if string(decrypted) != plaintext {
			t.Errorf("round trip mismatch\nwant: %s\ngot:  %s", plaintext, string(decrypted))
		}
	}
}

func TestDecryptAES_WrongKey(t *testing.T) {
	encrypted, _ := EncryptAES("correct-key", []byte("Data"))

	if _, err := DecryptAES("wrong-key", encrypted); err == nil {
		t.Error("DecryptAES with wrong key error = nil, want error")
	}
}

func TestDecryptAES_InvalidData(t *testing.T) {
	key := "test-key"

	if _, err := DecryptAES(key, []byte{1, 2, 3}); err == nil {
		t.Error("short data should fail")
	}
	if _, err := DecryptAES(key, []byte{}); err == nil {
		t.Error("empty data should fail")
	}
}

func TestEncryptField(t *testing.T) {
	enc, err := EncryptField("k", "GET /api/transactions")
	if err != nil {
		t.Fatalf("EncryptField error = %v", err)
	}
	if enc == "GET /api/transactions" {
		t.Fatal("EncryptField returned plaintext")
	}
	if got := DecryptField("k", enc); got != "GET /api/transactions" {
		t.Errorf("DecryptField = %q", got)
	}

	// no key: passthrough
	if got, _ := EncryptField("", "plain"); got != "plain" {
		t.Errorf("EncryptField without key = %q, want plain", got)
	}
	// undecryptable input is returned unchanged
	if got := DecryptField("k", "not-base64!"); got != "not-base64!" {
		t.Errorf("DecryptField(garbage) = %q", got)
	}
}

func BenchmarkEncryptAES(b *testing.B) {
	key := "bench-key"
	data := []byte("Benchmark data")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		EncryptAES(key, data)
	}
}
