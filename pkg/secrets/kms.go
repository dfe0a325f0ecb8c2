package secrets

import (
	"context"
	"encoding/base64"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/kms"
)

// KMSClient is the subset of the AWS KMS API the decryptor needs.
type KMSClient interface {
	Decrypt(ctx context.Context, params *kms.DecryptInput, optFns ...func(*kms.Options)) (*kms.DecryptOutput, error)
}

// KMS decrypts environment secrets through AWS KMS. The encryption context
// passed to Decrypt must match the context the value was encrypted with,
// which binds each ciphertext to a specific function identity.
type KMS struct {
	client KMSClient
}

// NewKMS creates a KMS-backed decryptor.
func NewKMS(client KMSClient) *KMS {
	return &KMS{client: client}
}

// Decrypt base64-decodes the ciphertext and asks KMS for the plaintext.
func (k *KMS) Decrypt(ctx context.Context, ciphertext string, encryptionContext map[string]string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", errors.Join(ErrInvalidCiphertext, err)
	}

	out, err := k.client.Decrypt(ctx, &kms.DecryptInput{
		CiphertextBlob:    blob,
		EncryptionContext: encryptionContext,
	})
	if err != nil {
		return "", errors.Join(ErrDecryptionFailed, err)
	}

	return string(out.Plaintext), nil
}
