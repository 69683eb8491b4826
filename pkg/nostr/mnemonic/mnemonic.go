// Package mnemonic derives nostr key pairs from BIP-39 phrases using the
// NIP-06 derivation path, so the same phrase always restores the same
// identity.
package mnemonic

import (
	"errors"
	"fmt"
	"os"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/nostrust/nostrust/pkg/nostr/keys"
	"github.com/nostrust/nostrust/pkg/slog"
	"github.com/tyler-smith/go-bip39"
)

var log, chk = slog.New(os.Stderr)

// DerivationPath is the fixed NIP-06 path, m/44'/1237'/0'/0/0.
const DerivationPath = "m/44'/1237'/0'/0/0"

// ErrInvalidMnemonic is returned when the phrase fails the BIP-39 wordlist
// or checksum validation.
var ErrInvalidMnemonic = errors.New("invalid mnemonic phrase")

// path is DerivationPath as child indexes for hdkeychain.
var path = []uint32{
	hdkeychain.HardenedKeyStart + 44,
	hdkeychain.HardenedKeyStart + 1237,
	hdkeychain.HardenedKeyStart + 0,
	0,
	0,
}

// Generate produces a fresh 24 word BIP-39 phrase.
func Generate() (phrase string, err error) {
	var entropy []byte
	if entropy, err = bip39.NewEntropy(256); chk.E(err) {
		return
	}
	if phrase, err = bip39.NewMnemonic(entropy); chk.E(err) {
		return
	}
	return
}

// ToSecretKey validates the phrase and deterministically derives the 32
// byte secret key at the NIP-06 path. The seed is generated with an empty
// passphrase.
func ToSecretKey(phrase string) (sk *keys.SecretKey, err error) {
	var seed []byte
	if seed, err = bip39.NewSeedWithErrorChecking(phrase, ""); err != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidMnemonic, err)
		log.D.Ln(err)
		return
	}
	var k *hdkeychain.ExtendedKey
	if k, err = hdkeychain.NewMaster(seed, &chaincfg.MainNetParams); chk.D(err) {
		return
	}
	for _, child := range path {
		if k, err = k.Derive(child); chk.D(err) {
			return
		}
	}
	var ek *btcec.PrivateKey
	if ek, err = k.ECPrivKey(); chk.D(err) {
		return
	}
	return keys.SecretKeyFromBytes(ek.Serialize())
}

// ToPair derives the signing pair for the phrase.
func ToPair(phrase string) (p *keys.Pair, err error) {
	var sk *keys.SecretKey
	if sk, err = ToSecretKey(phrase); chk.D(err) {
		return
	}
	p = keys.FromSecretKey(sk)
	return
}
