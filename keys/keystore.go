package keys

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Keystore blob layout: salt(16B) || nonce(12B) || AES-256-GCM ciphertext of
// seed || SHA256(seed)[:4]. The key is Argon2id over the password and salt.
const (
	argonTime        = 3
	argonMemory      = 64 * 1024 // KiB
	argonParallelism = 4
	argonKeyLen      = 32

	saltLen     = 16
	nonceLen    = 12
	checksumLen = 4
)

// EncryptSeed seals a master seed into a keystore blob under password.
func EncryptSeed(seed []byte, password string) ([]byte, error) {
	if len(seed) == 0 {
		return nil, ErrInvalidSeed
	}

	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("keys: failed to generate salt: %w", err)
	}

	gcm, err := seedCipher(password, salt)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("keys: failed to generate nonce: %w", err)
	}

	// Trailing checksum lets decryption distinguish a wrong password from a
	// valid but foreign blob.
	digest := sha256.Sum256(seed)
	plaintext := append(append([]byte{}, seed...), digest[:checksumLen]...)
	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)

	blob := make([]byte, 0, saltLen+nonceLen+len(ciphertext))
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = append(blob, ciphertext...)
	return blob, nil
}

// DecryptSeed opens a keystore blob and returns the master seed.
func DecryptSeed(blob []byte, password string) ([]byte, error) {
	if len(blob) < saltLen+nonceLen+checksumLen {
		return nil, ErrDecryptionFailed
	}
	salt := blob[:saltLen]
	nonce := blob[saltLen : saltLen+nonceLen]
	ciphertext := blob[saltLen+nonceLen:]

	gcm, err := seedCipher(password, salt)
	if err != nil {
		return nil, err
	}
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	if len(plaintext) < checksumLen {
		return nil, ErrDecryptionFailed
	}

	seed := plaintext[:len(plaintext)-checksumLen]
	digest := sha256.Sum256(seed)
	stored := plaintext[len(plaintext)-checksumLen:]
	for i := range stored {
		if stored[i] != digest[i] {
			return nil, ErrChecksumMismatch
		}
	}
	return seed, nil
}

// seedCipher derives the AES-GCM AEAD for a password and salt.
func seedCipher(password string, salt []byte) (cipher.AEAD, error) {
	key := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonParallelism, argonKeyLen)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("keys: AES cipher creation failed: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("keys: GCM creation failed: %w", err)
	}
	return gcm, nil
}
