package util

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/pbkdf2"
)

const keyIterations = 100_000

var (
	keySalt = []byte("finai-audit-v1")
	keys    sync.Map // key string -> derived []byte
)

// deriveKey stretches the configured key into 32 bytes with PBKDF2-SHA256.
// Derived keys are cached since every audited request encrypts twice.
func deriveKey(keyStr string) []byte {
	if k, ok := keys.Load(keyStr); ok {
		return k.([]byte)
	}
	k := pbkdf2.Key([]byte(keyStr), keySalt, keyIterations, 32, sha256.New)
	keys.Store(keyStr, k)
	return k
}

// EncryptAES encrypts with AES-256-GCM and returns nonce+ciphertext.
func EncryptAES(keyStr string, plaintext []byte) ([]byte, error) {
	key := deriveKey(keyStr)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("new cipher: %w", err)
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("new gcm: %w", err)
	}

	nonce := make([]byte, aesgcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("nonce: %w", err)
	}

	ciphertext := aesgcm.Seal(nil, nonce, plaintext, nil)
	return append(nonce, ciphertext...), nil
}

// DecryptAES reverses EncryptAES (input must be nonce+ciphertext).
func DecryptAES(keyStr string, data []byte) ([]byte, error) {
	key := deriveKey(keyStr)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("new cipher: %w", err)
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("new gcm: %w", err)
	}

	ns := aesgcm.NonceSize()
	if len(data) < ns {
		return nil, fmt.Errorf("cipher too short")
	}
	nonce, ciphertext := data[:ns], data[ns:]

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decrypt: %w", err)
	}
	return plaintext, nil
}

// EncryptField encrypts a string into base64. Empty input or key returns the input unchanged.
func EncryptField(key, plain string) (string, error) {
	if plain == "" || key == "" {
		return plain, nil
	}
	b, err := EncryptAES(key, []byte(plain))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// DecryptField reverses EncryptField; on any failure the input is returned as-is.
func DecryptField(key, cipherStr string) string {
	if cipherStr == "" || key == "" {
		return cipherStr
	}
	b, err := base64.StdEncoding.DecodeString(cipherStr)
	if err != nil {
		return cipherStr
	}
	plain, err := DecryptAES(key, b)
	if err != nil {
		return cipherStr
	}
	return string(plain)
}
