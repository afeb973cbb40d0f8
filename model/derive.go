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

package model

import (
	"encoding/binary"

	"github.com/piprate/xhdwallet/primitives"
)

const (
	prfTagZ  = 0x00
	prfTagCC = 0x01
)

// DeriveChildPrivate derives the child extended key at index from a
// parent extended key, using the given variant to combine PRF output
// into the child's left scalar. Hardened indices consume the parent's
// private scalars; soft indices only consume the parent's public key,
// so the same computation also underlies DeriveChildPublic.
func DeriveChildPrivate(parent ExtendedKey, index DerivationIndex, variant BIP32DerivationType) (ExtendedKey, error) {
	kLp := parent.KL()
	kRp := parent.KR()
	cp := parent.ChainCode()
	defer primitives.Zero32(&kLp)
	defer primitives.Zero32(&kRp)

	payload, err := derivationPayload(parent, index)
	if err != nil {
		return ExtendedKey{}, err
	}
	defer primitives.Zero(payload)

	z, err := primitives.Blake2bMAC512(cp[:], []byte{prfTagZ}, payload)
	if err != nil {
		return ExtendedKey{}, err
	}
	defer primitives.Zero64(&z)

	cc, err := primitives.Blake2bMAC512(cp[:], []byte{prfTagCC}, payload)
	if err != nil {
		return ExtendedKey{}, err
	}
	defer primitives.Zero64(&cc)

	var zL, zR [32]byte
	copy(zL[:], z[0:32])
	copy(zR[:], z[32:64])
	defer primitives.Zero32(&zL)
	defer primitives.Zero32(&zR)

	var cChild [32]byte
	copy(cChild[:], cc[32:64])

	zL8 := combineLeftMaterial(zL, variant)
	defer primitives.Zero32(&zL8)

	kLChild := primitives.ScalarAddMod2to256(zL8, kLp)
	kRChild := primitives.ScalarAddMod2to256(zR, kRp)

	return NewExtendedKey(kLChild, kRChild, cChild), nil
}

// DeriveChildPublic derives the child extended public key at a soft
// index from a parent extended public key. Hardened indices fail with
// ErrHardPublicDerivationForbidden, since public derivation has no
// access to the parent's private scalars.
func DeriveChildPublic(parent ExtendedPublicKey, index DerivationIndex, variant BIP32DerivationType) (ExtendedPublicKey, error) {
	if index.IsHardened() {
		return ExtendedPublicKey{}, ErrHardPublicDerivationForbidden
	}

	pkp := parent.PK()
	cp := parent.ChainCode()

	payload := make([]byte, 0, 36)
	payload = append(payload, pkp[:]...)
	payload = binary.LittleEndian.AppendUint32(payload, uint32(index))
	defer primitives.Zero(payload)

	z, err := primitives.Blake2bMAC512(cp[:], []byte{prfTagZ}, payload)
	if err != nil {
		return ExtendedPublicKey{}, err
	}
	defer primitives.Zero64(&z)

	cc, err := primitives.Blake2bMAC512(cp[:], []byte{prfTagCC}, payload)
	if err != nil {
		return ExtendedPublicKey{}, err
	}
	defer primitives.Zero64(&cc)

	var zL [32]byte
	copy(zL[:], z[0:32])
	defer primitives.Zero32(&zL)

	var cChild [32]byte
	copy(cChild[:], cc[32:64])

	zL8 := combineLeftMaterial(zL, variant)
	defer primitives.Zero32(&zL8)

	p, err := primitives.ScalarBaseMult(zL8)
	if err != nil {
		return ExtendedPublicKey{}, err
	}

	pkChild, err := primitives.PointAdd([32]byte(pkp), p)
	if err != nil {
		return ExtendedPublicKey{}, err
	}

	var xpk ExtendedPublicKey
	copy(xpk[0:32], pkChild[:])
	copy(xpk[32:64], cChild[:])
	return xpk, nil
}

// derivationPayload builds the PRF payload for a given parent/index
// pair: the hardened form carries both parent scalars, the soft form
// only the parent's public key.
func derivationPayload(parent ExtendedKey, index DerivationIndex) ([]byte, error) {
	if index.IsHardened() {
		kLp := parent.KL()
		kRp := parent.KR()
		payload := make([]byte, 0, 68)
		payload = append(payload, kLp[:]...)
		payload = append(payload, kRp[:]...)
		payload = binary.LittleEndian.AppendUint32(payload, uint32(index))
		return payload, nil
	}

	pkp, err := parent.PublicKey()
	if err != nil {
		return nil, err
	}
	payload := make([]byte, 0, 36)
	payload = append(payload, pkp[:]...)
	payload = binary.LittleEndian.AppendUint32(payload, uint32(index))
	return payload, nil
}

// combineLeftMaterial folds PRF output zL into the 256-bit value added
// to the parent's left scalar, per the selected variant.
func combineLeftMaterial(zL [32]byte, variant BIP32DerivationType) [32]byte {
	var buf [32]byte
	switch variant {
	case Khovratovich:
		// Low 28 bytes (224 bits) only; the top 4 bytes stay zero so
		// the left-shift-by-3 result still fits 32 bytes.
		copy(buf[:28], zL[:28])
	case Peikert:
		copy(buf[:], zL[:])
	}

	var out [32]byte
	copy(out[:], primitives.ShiftLeft3(buf[:]))
	return out
}

// DeriveKey walks path left to right from rootKey. When isPrivate is
// true it calls DeriveChildPrivate at every level and returns the leaf
// extended key. When isPrivate is false it starts from the root's
// extended public key and descends via DeriveChildPublic; a hardened
// level anywhere in the path fails the walk.
func DeriveKey(rootKey ExtendedKey, path []DerivationIndex, isPrivate bool, variant BIP32DerivationType) (ExtendedKey, ExtendedPublicKey, error) {
	if isPrivate {
		// node is a local copy of rootKey (arrays are value types in
		// Go), so zeroing it on every step never touches the caller's
		// original root key.
		node := rootKey
		for _, idx := range path {
			child, err := DeriveChildPrivate(node, idx, variant)
			if err != nil {
				node.Zero()
				return ExtendedKey{}, ExtendedPublicKey{}, err
			}
			node.Zero()
			node = child
		}
		return node, ExtendedPublicKey{}, nil
	}

	xpk, err := rootKey.ExtendedPublicKey()
	if err != nil {
		return ExtendedKey{}, ExtendedPublicKey{}, err
	}
	for _, idx := range path {
		child, err := DeriveChildPublic(xpk, idx, variant)
		if err != nil {
			return ExtendedKey{}, ExtendedPublicKey{}, err
		}
		xpk = child
	}
	return ExtendedKey{}, xpk, nil
}

// KeyGen derives the leaf key at the canonical BIP44-style path for
// context/account/keyIndex (change level fixed at 0) and returns its
// compressed Ed25519 public key.
func KeyGen(rootKey ExtendedKey, context KeyContext, account, keyIndex uint32, variant BIP32DerivationType) (PublicKey, error) {
	path := CanonicalPath(context, account, 0, keyIndex)
	leaf, _, err := DeriveKey(rootKey, path, true, variant)
	if err != nil {
		return PublicKey{}, err
	}
	defer leaf.Zero()
	return leaf.PublicKey()
}
