package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// low iteration count to keep the suite fast, production uses
// DefaultKdfIterations
const testKdfIterations = 4096

func TestEncryptDecrypt(t *testing.T) {
	passphrase := "supersecurekey"

	cypherText, salt, err := Encrypt(EncryptOpts{
		Mnemonic:   testMnemonic,
		Passphrase: passphrase,
		Iterations: testKdfIterations,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, cypherText)
	assert.Len(t, salt, 2*saltSize)

	revealed, err := Decrypt(DecryptOpts{
		CypherText: cypherText,
		Salt:       salt,
		Passphrase: passphrase,
		Iterations: testKdfIterations,
	})
	require.NoError(t, err)
	assert.Equal(t, testMnemonic, revealed)
}

func TestEncryptIsSalted(t *testing.T) {
	opts := EncryptOpts{
		Mnemonic:   testMnemonic,
		Passphrase: "supersecurekey",
		Iterations: testKdfIterations,
	}

	firstCypher, firstSalt, err := Encrypt(opts)
	require.NoError(t, err)
	secondCypher, secondSalt, err := Encrypt(opts)
	require.NoError(t, err)

	assert.NotEqual(t, firstCypher, secondCypher)
	assert.NotEqual(t, firstSalt, secondSalt)
}

func TestDecryptWithWrongPassphrase(t *testing.T) {
	cypherText, salt, err := Encrypt(EncryptOpts{
		Mnemonic:   testMnemonic,
		Passphrase: "rightpassword",
		Iterations: testKdfIterations,
	})
	require.NoError(t, err)

	_, err = Decrypt(DecryptOpts{
		CypherText: cypherText,
		Salt:       salt,
		Passphrase: "wrongpassword",
		Iterations: testKdfIterations,
	})
	assert.Equal(t, ErrInvalidPassword, err)
}

func TestFailingEncrypt(t *testing.T) {
	tests := []struct {
		opts EncryptOpts
		err  error
	}{
		{
			opts: EncryptOpts{Mnemonic: nil, Passphrase: "supersecurekey"},
			err:  ErrNullPlainText,
		},
		{
			opts: EncryptOpts{Mnemonic: testMnemonic, Passphrase: ""},
			err:  ErrNullPassphrase,
		},
	}
	for _, tt := range tests {
		_, _, err := Encrypt(tt.opts)
		assert.Equal(t, tt.err, err)
	}
}

func TestFailingDecrypt(t *testing.T) {
	tests := []struct {
		opts DecryptOpts
		err  error
	}{
		{
			opts: DecryptOpts{
				CypherText: "",
				Salt:       "2d2d2d2d2d2d2d2d2d2d2d2d2d2d2d2d",
				Passphrase: "supersecurekey",
			},
			err: ErrNullCypherText,
		},
		{
			opts: DecryptOpts{
				CypherText: "not base64!",
				Salt:       "2d2d2d2d2d2d2d2d2d2d2d2d2d2d2d2d",
				Passphrase: "supersecurekey",
			},
			err: ErrInvalidCypherText,
		},
		{
			opts: DecryptOpts{
				CypherText: "dGVzdHRlc3R0ZXN0dGVzdHRlc3R0ZXN0dGVzdA==",
				Salt:       "",
				Passphrase: "supersecurekey",
			},
			err: ErrNullSalt,
		},
		{
			opts: DecryptOpts{
				CypherText: "dGVzdHRlc3R0ZXN0dGVzdHRlc3R0ZXN0dGVzdA==",
				Salt:       "not hex",
				Passphrase: "supersecurekey",
			},
			err: ErrInvalidSalt,
		},
		{
			opts: DecryptOpts{
				CypherText: "dGVzdHRlc3R0ZXN0dGVzdHRlc3R0ZXN0dGVzdA==",
				Salt:       "2d2d2d2d2d2d2d2d2d2d2d2d2d2d2d2d",
				Passphrase: "",
			},
			err: ErrNullPassphrase,
		},
		{
			// well formed but undecryptable payload
			opts: DecryptOpts{
				CypherText: "dGVzdHRlc3R0ZXN0dGVzdHRlc3R0ZXN0dGVzdA==",
				Salt:       "2d2d2d2d2d2d2d2d2d2d2d2d2d2d2d2d",
				Passphrase: "supersecurekey",
				Iterations: testKdfIterations,
			},
			err: ErrInvalidPassword,
		},
	}
	for _, tt := range tests {
		_, err := Decrypt(tt.opts)
		assert.Equal(t, tt.err, err)
	}
}
