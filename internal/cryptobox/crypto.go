package cryptobox

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	verrors "github.com/silverfern314/notevault/internal/errors"

	"golang.org/x/crypto/nacl/secretbox"
)

// KeySize is the secretbox key length in bytes.
const KeySize = 32

// nonceSize is the secretbox nonce length in bytes. The nonce is
// prepended to the ciphertext so decryption can recover it.
const nonceSize = 24

// Key is the symmetric key used to encrypt and decrypt note fields.
type Key [KeySize]byte

// KeyFromPassphrase builds a key from the raw passphrase bytes,
// truncating or zero-padding to the secretbox key size.
//
// The passphrase is used as key material directly, with no key
// derivation function; see the key derivation note in DESIGN.md.
func KeyFromPassphrase(passphrase string) Key {
	var key Key
	copy(key[:], passphrase)
	return key
}

// Encrypt encrypts plaintext under key using NaCl secretbox.
//
// A fresh random 24-byte nonce is generated per call and prepended to
// the sealed bytes, so encrypting the same plaintext twice produces
// different ciphertext. The result is base64-encoded.
func Encrypt(plaintext string, key Key) (string, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("%w: generating nonce: %v", verrors.ErrEncryptionFailed, err)
	}

	boxKey := [KeySize]byte(key)
	sealed := secretbox.Seal(nonce[:], []byte(plaintext), &nonce, &boxKey)

	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt decrypts a ciphertext produced by Encrypt.
//
// It returns ErrDecryptionFailed when the input is malformed or the
// authentication check fails, which in practice means the key is
// wrong. This is the system's only password-verification mechanism.
func Decrypt(ciphertext string, key Key) (string, error) {
	sealed, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: invalid base64", verrors.ErrDecryptionFailed)
	}

	if len(sealed) < nonceSize {
		return "", fmt.Errorf("%w: ciphertext too short", verrors.ErrDecryptionFailed)
	}

	var nonce [nonceSize]byte
	copy(nonce[:], sealed[:nonceSize])

	boxKey := [KeySize]byte(key)
	plaintext, ok := secretbox.Open(nil, sealed[nonceSize:], &nonce, &boxKey)
	if !ok {
		return "", verrors.ErrDecryptionFailed
	}

	return string(plaintext), nil
}
