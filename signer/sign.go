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

package signer

import (
	"github.com/piprate/xhdwallet/model"
	"github.com/piprate/xhdwallet/primitives"
)

// SignatureSize is the length, in bytes, of a BIP32-Ed25519 signature:
// R(32) || S(32).
const SignatureSize = 64

// signWithExtendedKey produces a deterministic Ed25519 signature over
// msg using the (kL, kR) pair of a leaf extended key directly, without
// re-expanding them through SHA-512 as standard Ed25519 does:
//
//	r = SHA-512(kR || msg) mod ℓ
//	R = r·B
//	h = SHA-512(R || pk || msg) mod ℓ
//	S = r + h·kL mod ℓ
//	signature = R || S
func signWithExtendedKey(xsk model.ExtendedKey, msg []byte) ([]byte, error) {
	kL := xsk.KL()
	kR := xsk.KR()
	defer primitives.Zero32(&kL)
	defer primitives.Zero32(&kR)

	pk, err := xsk.PublicKey()
	if err != nil {
		return nil, err
	}

	rHash := primitives.SHA512(kR[:], msg)
	defer primitives.Zero64(&rHash)
	r, err := primitives.ReduceWideScalar(rHash)
	if err != nil {
		return nil, err
	}
	defer primitives.Zero32(&r)

	R, err := primitives.ScalarBaseMult(r)
	if err != nil {
		return nil, err
	}

	hHash := primitives.SHA512(R[:], pk[:], msg)
	defer primitives.Zero64(&hHash)
	h, err := primitives.ReduceWideScalar(hHash)
	if err != nil {
		return nil, err
	}
	defer primitives.Zero32(&h)

	S, err := primitives.ScalarMulAddMod(r, h, kL)
	if err != nil {
		return nil, err
	}

	sig := make([]byte, SignatureSize)
	copy(sig[0:32], R[:])
	copy(sig[32:64], S[:])
	return sig, nil
}

// deriveLeaf walks the canonical path for context/account/change/keyIndex
// and returns the leaf extended key. The caller must zero it.
func deriveLeaf(rootKey model.ExtendedKey, context model.KeyContext, account, change, keyIndex uint32, variant model.BIP32DerivationType) (model.ExtendedKey, error) {
	path := []model.DerivationIndex{
		model.Harden(44),
		model.Harden(context.CoinType()),
		model.Harden(account),
		model.DerivationIndex(change),
		model.DerivationIndex(keyIndex),
	}
	leaf, _, err := model.DeriveKey(rootKey, path, true, variant)
	return leaf, err
}
