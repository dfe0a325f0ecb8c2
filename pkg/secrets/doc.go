// Package secrets provides the decryption capability used to resolve
// encrypted environment configuration.
//
// Values are stored in the environment as base64-encoded ciphertext and
// decrypted with an encryption context: a small map of key/value pairs the
// ciphertext was bound to at encryption time (in deployment, the Lambda
// function name). A ciphertext only decrypts under the exact context it was
// encrypted with, so a secret lifted from one function's environment cannot
// be replayed by another.
//
// Two implementations of the Decryptor interface are provided:
//
//   - KMS: production path over the AWS KMS Decrypt API.
//   - AESGCM: a self-contained AES-256-GCM implementation for local
//     development and tests, with the matching Encrypt side so ciphertexts
//     can be produced without AWS access. The encryption context is folded
//     into HKDF key derivation to reproduce the binding behavior.
//
// Both fail with ErrDecryptionFailed on a wrong key or context mismatch and
// with ErrInvalidCiphertext on malformed input.
package secrets
