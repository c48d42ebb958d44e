// Package verify checks detached OpenPGP signatures of komodo files.
package verify

import (
	"bytes"
	"fmt"
	"os"

	"github.com/ProtonMail/go-crypto/openpgp"
)

var armorPrefix = []byte("-----BEGIN PGP")

// Verifier checks detached signatures
type Verifier interface {
	// VerifyDetached checks sig against data and returns the signer identity
	VerifyDetached(data, sig []byte) (string, error)
}

// KeyringVerifier implements Verifier using an OpenPGP public keyring
type KeyringVerifier struct {
	keyring openpgp.EntityList
}

// NewKeyringVerifier creates a verifier from an armored or binary keyring file
func NewKeyringVerifier(keyringPath string) (*KeyringVerifier, error) {
	if keyringPath == "" {
		return nil, fmt.Errorf("keyring path is empty")
	}

	data, err := os.ReadFile(keyringPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read keyring: %w", err)
	}

	return NewKeyringVerifierFromBytes(data)
}

// NewKeyringVerifierFromBytes creates a verifier from keyring data
func NewKeyringVerifierFromBytes(data []byte) (*KeyringVerifier, error) {
	var (
		keyring openpgp.EntityList
		err     error
	)
	if bytes.HasPrefix(bytes.TrimSpace(data), armorPrefix) {
		keyring, err = openpgp.ReadArmoredKeyRing(bytes.NewReader(data))
	} else {
		keyring, err = openpgp.ReadKeyRing(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read keyring: %w", err)
	}

	if len(keyring) == 0 {
		return nil, fmt.Errorf("no keys found in keyring")
	}

	return &KeyringVerifier{keyring: keyring}, nil
}

// VerifyDetached checks an armored or binary detached signature
func (v *KeyringVerifier) VerifyDetached(data, sig []byte) (string, error) {
	var (
		signer *openpgp.Entity
		err    error
	)
	if bytes.HasPrefix(bytes.TrimSpace(sig), armorPrefix) {
		signer, err = openpgp.CheckArmoredDetachedSignature(v.keyring, bytes.NewReader(data), bytes.NewReader(sig), nil)
	} else {
		signer, err = openpgp.CheckDetachedSignature(v.keyring, bytes.NewReader(data), bytes.NewReader(sig), nil)
	}
	if err != nil {
		return "", fmt.Errorf("signature check failed: %w", err)
	}

	if id := signer.PrimaryIdentity(); id != nil {
		return id.Name, nil
	}
	return fmt.Sprintf("%X", signer.PrimaryKey.Fingerprint), nil
}
