package secrets

import "errors"

var (
	// ErrInvalidKey is returned when a root key is not exactly KeySize bytes.
	ErrInvalidKey = errors.New("invalid key: must be 32 bytes")

	// ErrInvalidCiphertext is returned when a ciphertext is not valid base64
	// or is too short to contain a sealed value.
	ErrInvalidCiphertext = errors.New("invalid ciphertext format")

	// ErrDecryptionFailed is returned when the key service rejects the
	// ciphertext or the encryption context does not match.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrEncryptionFailed is returned when sealing a plaintext fails.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrKeyDerivationFailed is returned when the sealing key cannot be derived.
	ErrKeyDerivationFailed = errors.New("key derivation failed")
)
