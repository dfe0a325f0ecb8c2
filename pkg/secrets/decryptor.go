package secrets

import "context"

// Decryptor turns a base64-encoded ciphertext back into plaintext. The
// encryption context must match the one the value was encrypted under;
// a mismatch fails the call. Implementations are injected so tests can
// substitute a stub for the managed key service.
type Decryptor interface {
	Decrypt(ctx context.Context, ciphertext string, encryptionContext map[string]string) (string, error)
}
