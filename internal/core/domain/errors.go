package domain

import "errors"

var (
	// ErrNullMnemonicOrPassphrase ...
	ErrNullMnemonicOrPassphrase = errors.New("mnemonic and/or passphrase must not be null")
	// ErrVaultInvalidPassphrase ...
	ErrVaultInvalidPassphrase = errors.New("passphrase is not valid")
	// ErrVaultNotFound ...
	ErrVaultNotFound = errors.New("vault not found")
	// ErrVaultAlreadyExists is thrown when adding a vault for an address that
	// already has one
	ErrVaultAlreadyExists = errors.New("a vault for this address already exists")
)
