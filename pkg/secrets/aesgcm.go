package secrets

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"
	"sort"
	"strings"

	"golang.org/x/crypto/hkdf"
)

const (
	// KeySize is the required root key size: 256 bits for AES-256.
	KeySize = 32

	// saltInfo provides domain separation for HKDF key derivation.
	saltInfo = "help-relay-secrets-v1"
)

// AESGCM is a local stand-in for the managed key service, used by the dev
// harness and tests. Secrets are sealed with AES-256-GCM under a key derived
// from the root key and the encryption context, so decryption with a
// different context fails the same way a KMS context mismatch does.
type AESGCM struct {
	key []byte
}

// NewAESGCM creates a local decryptor from a 32-byte root key.
func NewAESGCM(key []byte) (*AESGCM, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKey
	}
	return &AESGCM{key: key}, nil
}

// GenerateKey returns a random root key suitable for NewAESGCM.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return key, nil
}

// Encrypt seals plaintext under the given encryption context and returns
// base64(nonce + ciphertext + tag). The counterpart to Decrypt, exposed so
// tests and provisioning tooling can produce ciphertexts.
func (a *AESGCM) Encrypt(_ context.Context, plaintext string, encryptionContext map[string]string) (string, error) {
	aead, err := a.aead(encryptionContext)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", errors.Join(ErrEncryptionFailed, err)
	}

	sealed := aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt. It fails with ErrDecryptionFailed when the key or
// the encryption context does not match.
func (a *AESGCM) Decrypt(_ context.Context, ciphertext string, encryptionContext map[string]string) (string, error) {
	sealed, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", errors.Join(ErrInvalidCiphertext, err)
	}

	aead, err := a.aead(encryptionContext)
	if err != nil {
		return "", err
	}

	nonceSize := aead.NonceSize()
	if len(sealed) < nonceSize {
		return "", ErrInvalidCiphertext
	}

	nonce, data := sealed[:nonceSize], sealed[nonceSize:]
	plaintext, err := aead.Open(nil, nonce, data, nil)
	if err != nil {
		return "", errors.Join(ErrDecryptionFailed, err)
	}

	return string(plaintext), nil
}

func (a *AESGCM) aead(encryptionContext map[string]string) (cipher.AEAD, error) {
	key, err := deriveKey(a.key, encryptionContext)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Join(ErrKeyDerivationFailed, err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Join(ErrKeyDerivationFailed, err)
	}
	return aead, nil
}

// deriveKey folds the encryption context into an HKDF info string so that
// each context yields an independent sealing key.
func deriveKey(rootKey []byte, encryptionContext map[string]string) ([]byte, error) {
	info := saltInfo + "|" + canonicalContext(encryptionContext)

	reader := hkdf.New(sha256.New, rootKey, nil, []byte(info))
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, errors.Join(ErrKeyDerivationFailed, err)
	}
	return key, nil
}

// canonicalContext renders the context map deterministically: sorted
// key=value pairs joined with semicolons.
func canonicalContext(encryptionContext map[string]string) string {
	keys := make([]string, 0, len(encryptionContext))
	for k := range encryptionContext {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+encryptionContext[k])
	}
	return strings.Join(pairs, ";")
}
