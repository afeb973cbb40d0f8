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

// Package model implements the BIP32-Ed25519 derivation engine: the
// seed-to-root conversion, the extended key/extended public key types,
// and the private/public child derivation functions. It holds no
// network or storage dependencies — see the sibling signer, ecdh, and
// wallet packages for everything built on top of it.
package model

import (
	"encoding/base64"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/piprate/xhdwallet/primitives"
)

const (
	// ExtendedKeySize is the length, in bytes, of a serialised xsk:
	// kL(32) || kR(32) || c(32).
	ExtendedKeySize = 96

	// ExtendedPublicKeySize is the length, in bytes, of a serialised
	// xpk: pk(32) || c(32).
	ExtendedPublicKeySize = 64

	// PublicKeySize is the length, in bytes, of a compressed Ed25519
	// public key.
	PublicKeySize = 32
)

// ExtendedKey is a 96-byte BIP32-Ed25519 extended secret key: a
// clamped left scalar, an unclamped right scalar, and a chaincode.
// Callers own the lifecycle of an ExtendedKey: zero it with Zero once
// it is no longer needed.
type ExtendedKey [ExtendedKeySize]byte

// NewExtendedKey builds an ExtendedKey from its three 32-byte
// components.
func NewExtendedKey(kL, kR, c [32]byte) ExtendedKey {
	var xsk ExtendedKey
	copy(xsk[0:32], kL[:])
	copy(xsk[32:64], kR[:])
	copy(xsk[64:96], c[:])
	return xsk
}

// KL returns the clamped left scalar.
func (k ExtendedKey) KL() [32]byte {
	var out [32]byte
	copy(out[:], k[0:32])
	return out
}

// KR returns the unclamped right scalar.
func (k ExtendedKey) KR() [32]byte {
	var out [32]byte
	copy(out[:], k[32:64])
	return out
}

// ChainCode returns the node's chaincode.
func (k ExtendedKey) ChainCode() [32]byte {
	var out [32]byte
	copy(out[:], k[64:96])
	return out
}

// PublicKey computes pk = kL·B for this extended key.
func (k ExtendedKey) PublicKey() (PublicKey, error) {
	pk, err := primitives.ScalarBaseMult(k.KL())
	if err != nil {
		return PublicKey{}, err
	}
	return PublicKey(pk), nil
}

// ExtendedPublicKey projects this extended key to its extended public
// key (pk || chaincode).
func (k ExtendedKey) ExtendedPublicKey() (ExtendedPublicKey, error) {
	pk, err := k.PublicKey()
	if err != nil {
		return ExtendedPublicKey{}, err
	}
	var xpk ExtendedPublicKey
	copy(xpk[0:32], pk[:])
	copy(xpk[32:64], k[64:96])
	return xpk, nil
}

// Bytes returns the 96-byte wire representation.
func (k ExtendedKey) Bytes() []byte {
	out := make([]byte, ExtendedKeySize)
	copy(out, k[:])
	return out
}

// Base64 encodes the extended key for display/storage by the caller.
// As with xsk.String() in the teacher's hdkeychain-based locker code,
// this is for caller convenience only — the library never persists it.
func (k ExtendedKey) Base64() string {
	return base64.StdEncoding.EncodeToString(k[:])
}

// Zero overwrites the extended key with zeros in place.
func (k *ExtendedKey) Zero() {
	primitives.Zero(k[:])
}

// ExtendedPublicKey is a 64-byte xpk: pk(32) || chaincode(32). It is as
// sensitive as an ExtendedKey for the purposes of descendant public
// derivation and must not be shared unless descendant derivation by
// the recipient is intended.
type ExtendedPublicKey [ExtendedPublicKeySize]byte

// PK returns the compressed Ed25519 public key half.
func (k ExtendedPublicKey) PK() PublicKey {
	var out PublicKey
	copy(out[:], k[0:32])
	return out
}

// ChainCode returns the node's chaincode.
func (k ExtendedPublicKey) ChainCode() [32]byte {
	var out [32]byte
	copy(out[:], k[32:64])
	return out
}

// Bytes returns the 64-byte wire representation.
func (k ExtendedPublicKey) Bytes() []byte {
	out := make([]byte, ExtendedPublicKeySize)
	copy(out, k[:])
	return out
}

// Zero overwrites the extended public key with zeros in place. The
// chaincode half is as sensitive as a secret key for child derivation
// purposes, so it is wiped along with the rest.
func (k *ExtendedPublicKey) Zero() {
	primitives.Zero(k[:])
}

// PublicKey is a compressed, 32-byte Ed25519 public key.
type PublicKey [PublicKeySize]byte

// Bytes returns the 32-byte wire representation.
func (k PublicKey) Bytes() []byte {
	out := make([]byte, PublicKeySize)
	copy(out, k[:])
	return out
}

// Base58 encodes the public key the way the teacher's DID verification
// keys are displayed, for caller convenience in logs and fixtures.
func (k PublicKey) Base58() string {
	return base58.Encode(k[:])
}
