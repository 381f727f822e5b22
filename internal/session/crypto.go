package session

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// Session files are sealed with AES-256-GCM under a key derived from the
// passphrase. On-disk layout: salt, then the GCM nonce, then the ciphertext.
const (
	sealSaltLen = 16
	sealKeyLen  = 32 // AES-256
	sealRounds  = 100000
)

// The session file only holds a short-lived bearer token and a display
// cache, so a built-in passphrase is acceptable when the user does not
// supply one.
const defaultPassphrase = "stockai-session-default-key"

var errSealedTooShort = errors.New("sealed session too short")

func sealKey(passphrase string, salt []byte) []byte {
	return pbkdf2.Key([]byte(passphrase), salt, sealRounds, sealKeyLen, sha256.New)
}

func sealCipher(passphrase string, salt []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(sealKey(passphrase, salt))
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// seal encrypts a session snapshot for storage. Each call draws a fresh salt
// and nonce, so sealing the same snapshot twice never produces the same file.
func seal(passphrase string, plaintext []byte) ([]byte, error) {
	salt := make([]byte, sealSaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}

	gcm, err := sealCipher(passphrase, salt)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	return append(salt, gcm.Seal(nonce, nonce, plaintext, nil)...), nil
}

// unseal reverses seal. A wrong passphrase and a tampered file are
// indistinguishable; both fail.
func unseal(passphrase string, sealed []byte) ([]byte, error) {
	if len(sealed) < sealSaltLen {
		return nil, errSealedTooShort
	}
	salt, rest := sealed[:sealSaltLen], sealed[sealSaltLen:]

	gcm, err := sealCipher(passphrase, salt)
	if err != nil {
		return nil, err
	}
	if len(rest) < gcm.NonceSize() {
		return nil, errSealedTooShort
	}
	nonce, ciphertext := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, errors.New("cannot unseal session: wrong passphrase or corrupted file")
	}
	return plaintext, nil
}
