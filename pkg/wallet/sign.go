package wallet

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"golang.org/x/crypto/sha3"
)

const compactSigSize = 65

// Signature is an ethereum-style recoverable ECDSA signature. R and S are
// fixed 32 byte big-endian scalars, RecoveryID identifies which of the two
// candidate public keys the signature belongs to.
type Signature struct {
	R          [32]byte
	S          [32]byte
	RecoveryID byte
}

// Keccak256 returns the legacy Keccak-256 digest of the concatenation of
// the given byte slices. This is the pre-NIST padding variant used by
// ethereum, not standard SHA3-256.
func Keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, b := range data {
		h.Write(b)
	}
	return h.Sum(nil)
}

// PublicKeyFromPrivate returns the uncompressed public key of the given
// private key as a 64 byte slice, with the 0x04 format prefix stripped.
func PublicKeyFromPrivate(prvkey *btcec.PrivateKey) []byte {
	return prvkey.PubKey().SerializeUncompressed()[1:]
}

// SignHashOpts is the struct given to the SignHash method
type SignHashOpts struct {
	Hash []byte
}

func (o SignHashOpts) validate() error {
	if len(o.Hash) != 32 {
		return ErrNullHash
	}
	return nil
}

// SignHash produces a recoverable signature of the given 32 byte hash with
// the provided private key. The nonce is generated deterministically per
// RFC6979 and the signature is canonical, s is always in the lower half of
// the group order.
func SignHash(opts SignHashOpts, prvkey *btcec.PrivateKey) (*Signature, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if prvkey == nil || prvkey.Key.IsZero() {
		return nil, ErrInvalidKey
	}

	// compact format is [recovery header (27 + id)] [R (32)] [S (32)]
	compact, err := ecdsa.SignCompact(prvkey, opts.Hash, false)
	if err != nil {
		return nil, err
	}
	if len(compact) != compactSigSize {
		return nil, ErrInvalidKey
	}

	sig := &Signature{RecoveryID: compact[0] - 27}
	copy(sig.R[:], compact[1:33])
	copy(sig.S[:], compact[33:65])
	return sig, nil
}
