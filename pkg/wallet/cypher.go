package wallet

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strings"

	"github.com/thanhpk/randstr"
	"golang.org/x/crypto/pbkdf2"
)

const (
	saltSize = 16
	keySize  = 32

	// DefaultKdfIterations is the PBKDF2 work factor used when the caller
	// does not provide one.
	DefaultKdfIterations = 600000
)

// EncryptOpts is the struct given to Encrypt method
type EncryptOpts struct {
	Mnemonic   []string
	Passphrase string
	Iterations int
}

func (o EncryptOpts) validate() error {
	if len(o.Mnemonic) <= 0 {
		return ErrNullPlainText
	}
	if len(o.Passphrase) <= 0 {
		return ErrNullPassphrase
	}
	return nil
}

// Encrypt encrypts the mnemonic with AES-256-GCM, stretching the passphrase
// with PBKDF2-HMAC-SHA256 over a random 16 byte salt. It returns the base64
// cyphertext (nonce prepended) and the hex encoded salt, to be stored
// alongside it in the vault record.
func Encrypt(opts EncryptOpts) (cypherText, salt string, err error) {
	if err := opts.validate(); err != nil {
		return "", "", err
	}

	rawSalt := randstr.Bytes(saltSize)
	iterations := opts.Iterations
	if iterations <= 0 {
		iterations = DefaultKdfIterations
	}
	key := deriveKey([]byte(opts.Passphrase), rawSalt, iterations)

	blockCipher, err := aes.NewCipher(key)
	if err != nil {
		return "", "", err
	}
	gcm, err := cipher.NewGCM(blockCipher)
	if err != nil {
		return "", "", err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", "", err
	}

	plainText := strings.Join(opts.Mnemonic, " ")
	rawCypher := gcm.Seal(nonce, nonce, []byte(plainText), nil)

	cypherText = base64.StdEncoding.EncodeToString(rawCypher)
	salt = hex.EncodeToString(rawSalt)
	return cypherText, salt, nil
}

// DecryptOpts is the struct given to Decrypt method
type DecryptOpts struct {
	CypherText string
	Salt       string
	Passphrase string
	Iterations int
}

func (o DecryptOpts) validate() error {
	if len(o.CypherText) <= 0 {
		return ErrNullCypherText
	}
	if _, err := base64.StdEncoding.DecodeString(o.CypherText); err != nil {
		return ErrInvalidCypherText
	}
	if len(o.Salt) <= 0 {
		return ErrNullSalt
	}
	if _, err := hex.DecodeString(o.Salt); err != nil {
		return ErrInvalidSalt
	}
	if len(o.Passphrase) <= 0 {
		return ErrNullPassphrase
	}
	return nil
}

// Decrypt re-derives the symmetric key from the stored salt and the
// supplied passphrase and decrypts the mnemonic. Decryption is the only
// password verification mechanism of the vault: a failed GCM authentication
// OR a decrypted plaintext that does not validate as a BIP39 mnemonic both
// yield ErrInvalidPassword, so a wrong passphrase can never surface
// plausible-looking garbage.
func Decrypt(opts DecryptOpts) ([]string, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	rawCypher, _ := base64.StdEncoding.DecodeString(opts.CypherText)
	rawSalt, _ := hex.DecodeString(opts.Salt)
	iterations := opts.Iterations
	if iterations <= 0 {
		iterations = DefaultKdfIterations
	}
	key := deriveKey([]byte(opts.Passphrase), rawSalt, iterations)

	blockCipher, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(blockCipher)
	if err != nil {
		return nil, err
	}
	if len(rawCypher) <= gcm.NonceSize() {
		return nil, ErrInvalidPassword
	}

	nonce, text := rawCypher[:gcm.NonceSize()], rawCypher[gcm.NonceSize():]
	plainText, err := gcm.Open(nil, nonce, text, nil)
	if err != nil {
		return nil, ErrInvalidPassword
	}

	mnemonic := strings.Split(string(plainText), " ")
	if !isMnemonicValid(mnemonic) {
		return nil, ErrInvalidPassword
	}
	return mnemonic, nil
}

func deriveKey(passphrase, salt []byte, iterations int) []byte {
	return pbkdf2.Key(passphrase, salt, iterations, keySize, sha256.New)
}
