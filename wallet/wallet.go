// Copyright 2022 Piprate Limited
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package wallet wires the model, signer, and ecdh packages around one
// owned seed: a single caller-facing entry point for derivation,
// signing, and key exchange, with zeroization on Close.
package wallet

import (
	"fmt"

	"github.com/piprate/xhdwallet/ecdh"
	"github.com/piprate/xhdwallet/model"
	"github.com/piprate/xhdwallet/signer"
)

type walletOptions struct {
	variant model.BIP32DerivationType
}

// Option configures a Wallet at construction time.
type Option func(*walletOptions)

// WithVariant selects the BIP32-Ed25519 combine variant for every
// derivation performed through this wallet. The default is Peikert.
func WithVariant(variant model.BIP32DerivationType) Option {
	return func(o *walletOptions) {
		o.variant = variant
	}
}

// Wallet wraps one root extended key, derived once from a caller-owned
// seed, and exposes the library's three operations without requiring
// callers to juggle extended keys directly.
type Wallet struct {
	root    model.ExtendedKey
	variant model.BIP32DerivationType
	closed  bool
}

// New derives a root extended key from seed and returns a Wallet bound
// to it. The caller retains ownership of seed and must zero it; the
// wallet never retains a reference to the slice it was given.
func New(seed []byte, opts ...Option) (*Wallet, error) {
	options := walletOptions{variant: model.Peikert}
	for _, opt := range opts {
		opt(&options)
	}

	root, err := model.NewRootKey(seed)
	if err != nil {
		return nil, fmt.Errorf("wallet: %w", err)
	}

	return &Wallet{root: root, variant: options.variant}, nil
}

// Close zeroes the wallet's root extended key. The wallet must not be
// used afterwards.
func (w *Wallet) Close() {
	w.root.Zero()
	w.closed = true
}

func (w *Wallet) checkOpen() error {
	if w.closed {
		return errClosed
	}
	return nil
}

// KeyGen returns the compressed public key at the canonical path for
// context/account/keyIndex.
func (w *Wallet) KeyGen(context model.KeyContext, account, keyIndex uint32) (model.PublicKey, error) {
	if err := w.checkOpen(); err != nil {
		return model.PublicKey{}, err
	}
	return model.KeyGen(w.root, context, account, keyIndex, w.variant)
}

// SignAlgoTransaction signs a pre-prefixed Algorand payload with the
// leaf key at the canonical path for context/account/change/keyIndex.
func (w *Wallet) SignAlgoTransaction(context model.KeyContext, account, change, keyIndex uint32, prefixEncodedTx []byte) ([]byte, error) {
	if err := w.checkOpen(); err != nil {
		return nil, err
	}
	return signer.SignAlgoTransaction(w.root, context, account, change, keyIndex, prefixEncodedTx, w.variant)
}

// SignData runs the safety-gated signing pipeline (see package signer)
// with the leaf key at the canonical path for context/account/change/keyIndex.
func (w *Wallet) SignData(context model.KeyContext, account, change, keyIndex uint32, data []byte, metadata signer.SignMetadata) ([]byte, error) {
	if err := w.checkOpen(); err != nil {
		return nil, err
	}
	return signer.SignData(w.root, context, account, change, keyIndex, data, metadata, w.variant)
}

// ECDH derives a shared secret with otherPartyPub using the leaf key at
// the canonical path for context/account/keyIndex. Both parties must
// pass opposite meFirst values to agree on the same secret.
func (w *Wallet) ECDH(context model.KeyContext, account, keyIndex uint32, otherPartyPub []byte, meFirst bool) ([32]byte, error) {
	if err := w.checkOpen(); err != nil {
		return [32]byte{}, err
	}
	return ecdh.ECDH(w.root, context, account, keyIndex, otherPartyPub, meFirst, w.variant)
}

// ExtendedPublicKey returns the xpk of the leaf at path, for handing to
// a counterparty that will perform public-only descendant derivation.
func (w *Wallet) ExtendedPublicKey(context model.KeyContext, account, change, keyIndex uint32) (model.ExtendedPublicKey, error) {
	if err := w.checkOpen(); err != nil {
		return model.ExtendedPublicKey{}, err
	}
	path := model.CanonicalPath(context, account, change, keyIndex)
	leaf, _, err := model.DeriveKey(w.root, path, true, w.variant)
	if err != nil {
		return model.ExtendedPublicKey{}, err
	}
	defer leaf.Zero()
	return leaf.ExtendedPublicKey()
}
