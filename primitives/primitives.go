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

// Package primitives is the uniform adapter over the cryptographic
// building blocks the rest of this module is written against: SHA-512,
// keyed BLAKE2b, Ed25519 scalar/point arithmetic, X25519, detached
// Ed25519 verification, an authenticated secretbox, and Ed25519->X25519
// key conversion. Nothing outside this package touches those libraries
// directly.
package primitives

import (
	"crypto/ed25519"
	"crypto/sha512"
	"errors"

	"filippo.io/edwards25519"
	"github.com/jamesruan/sodium"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/curve25519"
)

// ErrPrimitiveFailure is returned when an underlying cryptographic
// primitive rejects its input in a way none of the higher-level
// packages can attribute to caller error.
var ErrPrimitiveFailure = errors.New("primitives: underlying cryptographic primitive failed")

// SHA512 returns the 64-byte SHA-512 digest of data.
func SHA512(data ...[]byte) [64]byte {
	h := sha512.New()
	for _, d := range data {
		h.Write(d)
	}
	var out [64]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Blake2b256 returns the 32-byte, unkeyed BLAKE2b-256 digest of the
// concatenation of data.
func Blake2b256(data ...[]byte) ([32]byte, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return [32]byte{}, errors.Join(ErrPrimitiveFailure, err)
	}
	for _, d := range data {
		h.Write(d)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out, nil
}

// Blake2bMAC512 returns the 64-byte BLAKE2b-512 digest of data, keyed
// by key. This is the PRF used throughout the derivation engine.
func Blake2bMAC512(key []byte, data ...[]byte) ([64]byte, error) {
	h, err := blake2b.New512(key)
	if err != nil {
		return [64]byte{}, errors.Join(ErrPrimitiveFailure, err)
	}
	for _, d := range data {
		h.Write(d)
	}
	var out [64]byte
	copy(out[:], h.Sum(nil))
	return out, nil
}

// ScalarAddMod2to256 adds two 32-byte little-endian integers modulo
// 2^256 (plain carrying addition, truncated to 32 bytes — deliberately
// NOT a reduction modulo the group order ℓ). This is the combine rule
// BIP32-Ed25519 uses for both the left and right halves of a child
// extended key.
func ScalarAddMod2to256(a, b [32]byte) [32]byte {
	var out [32]byte
	var carry uint16
	for i := 0; i < 32; i++ {
		sum := uint16(a[i]) + uint16(b[i]) + carry
		out[i] = byte(sum)
		carry = sum >> 8
	}
	return out
}

// ShiftLeft3 left-shifts a little-endian byte string by 3 bits,
// returning a value truncated back to len(in) bytes (the high 3 bits
// of the result are dropped, matching the reference implementation's
// treatment of the 259-bit intermediate value in the Peikert variant).
func ShiftLeft3(in []byte) []byte {
	out := make([]byte, len(in))
	var carry byte
	for i := 0; i < len(in); i++ {
		out[i] = (in[i] << 3) | carry
		carry = in[i] >> 5
	}
	return out
}

// ScalarBaseMult computes scalar*B, where B is the Ed25519 base point
// and scalar is treated as a little-endian integer reduced modulo ℓ
// before multiplication (multiplication by n and by n mod ℓ are
// identical since B has order ℓ). It does not clamp scalar; callers
// that need the standard Ed25519 clamp must apply it beforehand.
func ScalarBaseMult(scalar [32]byte) ([32]byte, error) {
	s, err := reduceScalar(scalar)
	if err != nil {
		return [32]byte{}, err
	}
	p := new(edwards25519.Point).ScalarBaseMult(s)
	var out [32]byte
	copy(out[:], p.Bytes())
	return out, nil
}

// PointAdd computes the Ed25519 point addition p+q, both given and
// returned in compressed form.
func PointAdd(p, q [32]byte) ([32]byte, error) {
	pp, err := new(edwards25519.Point).SetBytes(p[:])
	if err != nil {
		return [32]byte{}, errors.Join(ErrPrimitiveFailure, err)
	}
	qq, err := new(edwards25519.Point).SetBytes(q[:])
	if err != nil {
		return [32]byte{}, errors.Join(ErrPrimitiveFailure, err)
	}
	r := new(edwards25519.Point).Add(pp, qq)
	var out [32]byte
	copy(out[:], r.Bytes())
	return out, nil
}

// ScalarMulAddMod computes (r + h*kL) mod ℓ, the final step of the
// BIP32-Ed25519 Ed25519 signing equation.
func ScalarMulAddMod(r, h, kL [32]byte) ([32]byte, error) {
	rs, err := reduceScalar(r)
	if err != nil {
		return [32]byte{}, err
	}
	hs, err := reduceScalar(h)
	if err != nil {
		return [32]byte{}, err
	}
	ks, err := reduceScalar(kL)
	if err != nil {
		return [32]byte{}, err
	}
	s := new(edwards25519.Scalar).MultiplyAdd(hs, ks, rs)
	var out [32]byte
	copy(out[:], s.Bytes())
	return out, nil
}

// reduceScalar reduces a 32-byte little-endian integer modulo ℓ. Values
// that are not already canonical (e.g. an unreduced child kL produced
// by ScalarAddMod2to256) are accepted: SetUniformBytes takes up to
// 64 bytes and reduces, so the 32-byte value is zero-extended first.
func reduceScalar(b [32]byte) (*edwards25519.Scalar, error) {
	var wide [64]byte
	copy(wide[:32], b[:])
	s, err := new(edwards25519.Scalar).SetUniformBytes(wide[:])
	if err != nil {
		return nil, errors.Join(ErrPrimitiveFailure, err)
	}
	return s, nil
}

// ReduceWideScalar reduces a 64-byte value (typically a SHA-512 digest)
// modulo ℓ, returning the canonical 32-byte little-endian scalar. This
// is the nonce and challenge reduction step of BIP32-Ed25519 signing.
func ReduceWideScalar(b [64]byte) ([32]byte, error) {
	s, err := new(edwards25519.Scalar).SetUniformBytes(b[:])
	if err != nil {
		return [32]byte{}, errors.Join(ErrPrimitiveFailure, err)
	}
	var out [32]byte
	copy(out[:], s.Bytes())
	return out, nil
}

// DetachedVerify verifies a detached Ed25519 signature. It is the only
// operation in this module permitted to fail permissively (by
// returning false instead of an error).
func DetachedVerify(pk, msg, sig []byte) bool {
	if len(pk) != ed25519.PublicKeySize || len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(pk, msg, sig)
}

// Ed25519PkToCurve25519 converts a compressed Ed25519 public key to its
// birationally-equivalent X25519 public key.
func Ed25519PkToCurve25519(pk []byte) ([32]byte, error) {
	if len(pk) != ed25519.PublicKeySize {
		return [32]byte{}, ErrPrimitiveFailure
	}
	box := sodium.SignPublicKey{Bytes: append([]byte(nil), pk...)}.ToBox()
	var out [32]byte
	copy(out[:], box.Bytes)
	return out, nil
}

// Ed25519SkToCurve25519 converts a 64-byte Ed25519 secret key (seed ||
// public key, libsodium layout) to its X25519 secret scalar.
func Ed25519SkToCurve25519(sk []byte) ([32]byte, error) {
	if len(sk) != 64 {
		return [32]byte{}, ErrPrimitiveFailure
	}
	box := sodium.SignSecretKey{Bytes: append([]byte(nil), sk...)}.ToBox()
	var out [32]byte
	copy(out[:], box.Bytes)
	return out, nil
}

// X25519 computes the raw X25519 Diffie-Hellman shared point.
func X25519(scalar, point [32]byte) ([32]byte, error) {
	out, err := curve25519.X25519(scalar[:], point[:])
	if err != nil {
		return [32]byte{}, errors.Join(ErrPrimitiveFailure, err)
	}
	var result [32]byte
	copy(result[:], out)
	return result, nil
}

// SecretboxSeal encrypts msg with an authenticated secretbox keyed by
// key, generating a fresh random nonce and prepending it to the
// ciphertext.
func SecretboxSeal(msg []byte, key [32]byte) []byte {
	nonce := sodium.SecretBoxNonce{}
	sodium.Randomize(&nonce)
	boxKey := sodium.SecretBoxKey{Bytes: key[:]}
	ct := sodium.Bytes(msg).SecretBox(nonce, boxKey)
	return append(nonce.Bytes, ct...)
}

// SecretboxOpen decrypts a ciphertext produced by SecretboxSeal.
func SecretboxOpen(ciphertext []byte, key [32]byte) ([]byte, error) {
	const nonceSize = 24
	if len(ciphertext) < nonceSize {
		return nil, ErrPrimitiveFailure
	}
	nonce := sodium.SecretBoxNonce{Bytes: append([]byte(nil), ciphertext[:nonceSize]...)}
	boxKey := sodium.SecretBoxKey{Bytes: key[:]}
	pt, err := sodium.Bytes(ciphertext[nonceSize:]).SecretBoxOpen(nonce, boxKey)
	if err != nil {
		return nil, errors.Join(ErrPrimitiveFailure, err)
	}
	return []byte(pt), nil
}

// SealedBoxEncrypt anonymously encrypts msg to the recipient's Ed25519
// public key, as used by the ECDH usage example. Adapted from
// model.AnonEncrypt.
func SealedBoxEncrypt(msg, recipientPk []byte) []byte {
	boxPk := sodium.SignPublicKey{Bytes: append([]byte(nil), recipientPk...)}.ToBox()
	return sodium.Bytes(msg).SealedBox(boxPk)
}

// SealedBoxDecrypt opens a message produced by SealedBoxEncrypt using
// the recipient's 64-byte Ed25519 secret key. Adapted from
// model.AnonDecrypt.
func SealedBoxDecrypt(ciphertext, recipientSk []byte) ([]byte, error) {
	if len(recipientSk) != 64 {
		return nil, ErrPrimitiveFailure
	}
	publicKey := recipientSk[32:]

	spk := sodium.SignPublicKey{Bytes: append([]byte(nil), publicKey...)}
	sk := sodium.SignSecretKey{Bytes: append([]byte(nil), recipientSk...)}

	decrypted, err := sodium.Bytes(ciphertext).SealedBoxOpen(sodium.BoxKP{
		PublicKey: spk.ToBox(),
		SecretKey: sk.ToBox(),
	})
	if err != nil {
		return nil, errors.Join(ErrPrimitiveFailure, err)
	}
	return []byte(decrypted), nil
}
