package helpers

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
)

// Encryptor is the encryption primitive applied to sensitive payment tokens
// before they are persisted.
type Encryptor interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// AESGCMEncryptor encrypts with AES-256-GCM, deriving the cipher key from the
// configured secret. Output is base64 with the nonce prepended.
type AESGCMEncryptor struct {
	key [32]byte
}

// NewAESGCMEncryptor returns an encryptor for the given secret
func NewAESGCMEncryptor(secret string) *AESGCMEncryptor {
	return &AESGCMEncryptor{key: sha256.Sum256([]byte(secret))}
}

// Encrypt encrypts and encodes a plaintext token
func (e *AESGCMEncryptor) Encrypt(plaintext string) (string, error) {
	gcm, err := e.gcm()
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("error generating nonce: [%v]", err)
	}

	sealed := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt
func (e *AESGCMEncryptor) Decrypt(ciphertext string) (string, error) {
	gcm, err := e.gcm()
	if err != nil {
		return "", err
	}

	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("error decoding ciphertext: [%v]", err)
	}

	if len(raw) < gcm.NonceSize() {
		return "", fmt.Errorf("ciphertext shorter than nonce")
	}

	plaintext, err := gcm.Open(nil, raw[:gcm.NonceSize()], raw[gcm.NonceSize():], nil)
	if err != nil {
		return "", fmt.Errorf("error decrypting ciphertext: [%v]", err)
	}

	return string(plaintext), nil
}

func (e *AESGCMEncryptor) gcm() (cipher.AEAD, error) {
	block, err := aes.NewCipher(e.key[:])
	if err != nil {
		return nil, fmt.Errorf("error creating cipher: [%v]", err)
	}
	return cipher.NewGCM(block)
}
