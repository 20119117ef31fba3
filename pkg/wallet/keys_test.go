package wallet

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reference values for the standard BIP39 test mnemonic at m/44'/60'/0'/0/0
const (
	vectorPrivateKey = "1ab42cc412b618bdea3a599e3c9bae199ebf030895b039e9db1e30dafb12b727"
	vectorAddress    = "0x9858effd232b4033e47d90003d41ec34ecaeda94"
)

func TestDeriveAccountKey(t *testing.T) {
	wallet, err := newTestWallet()
	require.NoError(t, err)

	prvkey, err := wallet.DeriveAccountKey(DeriveAccountKeyOpts{AccountIndex: 0})
	require.NoError(t, err)
	assert.Equal(t, vectorPrivateKey, hex.EncodeToString(prvkey.Serialize()))
}

func TestDeriveAccountKeyIsDeterministic(t *testing.T) {
	wallet, err := newTestWallet()
	require.NoError(t, err)

	first, err := wallet.DeriveAccountKey(DeriveAccountKeyOpts{AccountIndex: 3})
	require.NoError(t, err)
	second, err := wallet.DeriveAccountKey(DeriveAccountKeyOpts{AccountIndex: 3})
	require.NoError(t, err)
	assert.Equal(t, first.Serialize(), second.Serialize())
}

func TestDeriveAccountKeysAreDistinct(t *testing.T) {
	wallet, err := newTestWallet()
	require.NoError(t, err)

	seen := map[string]struct{}{}
	for index := uint32(0); index < 5; index++ {
		prvkey, err := wallet.DeriveAccountKey(DeriveAccountKeyOpts{
			AccountIndex: index,
		})
		require.NoError(t, err)

		key := hex.EncodeToString(prvkey.Serialize())
		_, ok := seen[key]
		assert.False(t, ok)
		seen[key] = struct{}{}
	}
}

func TestDeriveAccountAddress(t *testing.T) {
	wallet, err := newTestWallet()
	require.NoError(t, err)

	addr, err := wallet.DeriveAccountAddress(DeriveAccountKeyOpts{AccountIndex: 0})
	require.NoError(t, err)
	assert.Equal(t, vectorAddress, addr)
}

func TestDeriveAllAccounts(t *testing.T) {
	wallet, err := newTestWallet()
	require.NoError(t, err)

	accounts, err := wallet.DeriveAllAccounts(DeriveAllAccountsOpts{MaxAccounts: 4})
	require.NoError(t, err)
	require.Len(t, accounts, 4)

	assert.Equal(t, uint32(0), accounts[0].AccountIndex)
	assert.Equal(t, vectorAddress, accounts[0].Address)
	assert.Equal(t, vectorPrivateKey, accounts[0].PrivateKey)

	for i, account := range accounts {
		assert.Equal(t, uint32(i), account.AccountIndex)
		assert.True(t, IsValidAddress(account.Address))
	}
}

func TestFailingDeriveAccountKey(t *testing.T) {
	wallet, err := newTestWallet()
	require.NoError(t, err)

	_, err = wallet.DeriveAccountKey(DeriveAccountKeyOpts{
		AccountIndex: MaxHardenedValue + 1,
	})
	assert.Equal(t, ErrOutOfRangeDerivationPathAccount, err)
}

func TestParseDerivationPath(t *testing.T) {
	path, err := ParseDerivationPath("m/44'/60'/0'/0")
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseDerivationPath, path)
	assert.Equal(t, "m/44'/60'/0'/0", path.String())
}

func TestFailingParseDerivationPath(t *testing.T) {
	tests := []struct {
		path string
		err  error
	}{
		{"", ErrNullDerivationPath},
		{"m/44'/60'/", ErrMalformedDerivationPath},
		{"/44'/60'", ErrMalformedDerivationPath},
		{"m", ErrMalformedDerivationPath},
	}
	for _, tt := range tests {
		_, err := ParseDerivationPath(tt.path)
		assert.Equal(t, tt.err, err)
	}
}
