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

package ecdh

import (
	"bytes"
	"errors"

	"github.com/piprate/xhdwallet/model"
	"github.com/piprate/xhdwallet/primitives"
)

// SharedSecretSize is the length, in bytes, of the value returned by ECDH.
const SharedSecretSize = 32

// ECDH derives the leaf extended key at the canonical path for
// context/account/keyIndex (change fixed at 0), converts it and
// otherPartyPub to X25519, and returns a 32-byte shared secret. Both
// sides of an exchange must call this with opposite meFirst values to
// agree on the same secret.
func ECDH(rootKey model.ExtendedKey, context model.KeyContext, account, keyIndex uint32, otherPartyPub []byte, meFirst bool, variant model.BIP32DerivationType) ([32]byte, error) {
	path := model.CanonicalPath(context, account, 0, keyIndex)
	leaf, _, err := model.DeriveKey(rootKey, path, true, variant)
	if err != nil {
		return [32]byte{}, err
	}
	defer leaf.Zero()

	pk, err := leaf.PublicKey()
	if err != nil {
		return [32]byte{}, err
	}

	skX, err := primitives.Ed25519SkToCurve25519(leaf.Bytes()[0:64])
	if err != nil {
		return [32]byte{}, err
	}
	defer primitives.Zero32(&skX)

	pkXSelf, err := primitives.Ed25519PkToCurve25519(pk.Bytes())
	if err != nil {
		return [32]byte{}, err
	}

	pkXPeer, err := primitives.Ed25519PkToCurve25519(otherPartyPub)
	if err != nil {
		return [32]byte{}, err
	}

	dh, err := primitives.X25519(skX, pkXPeer)
	if err != nil {
		// With 32-byte inputs, X25519 fails only on an all-zero result.
		return [32]byte{}, errors.Join(ErrWeakPoint, err)
	}
	defer primitives.Zero32(&dh)

	if bytes.Equal(dh[:], make([]byte, 32)) {
		return [32]byte{}, ErrWeakPoint
	}

	var first, second [32]byte
	if meFirst {
		first, second = pkXSelf, pkXPeer
	} else {
		first, second = pkXPeer, pkXSelf
	}

	return primitives.Blake2b256(dh[:], first[:], second[:])
}
