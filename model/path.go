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

// DerivationIndex addresses one level of a derivation path. Values
// below FirstHardenedIndex permit public derivation; values at or
// above it require the parent's private scalars.
type DerivationIndex uint32

// FirstHardenedIndex is 2^31, the smallest hardened index.
const FirstHardenedIndex DerivationIndex = 1 << 31

// Harden returns n + 2^31.
func Harden(n uint32) DerivationIndex {
	return DerivationIndex(n) + FirstHardenedIndex
}

// IsHardened reports whether i requires private derivation.
func (i DerivationIndex) IsHardened() bool {
	return i >= FirstHardenedIndex
}

// KeyContext selects the BIP44 cointype used when building a canonical
// wallet path.
type KeyContext int

const (
	// KeyContextAddress is used for on-chain signing keys (Algorand
	// transactions and the like), cointype 283.
	KeyContextAddress KeyContext = iota
	// KeyContextIdentity is used for off-chain identity/ECDH keys,
	// cointype 0.
	KeyContextIdentity
)

// CoinType returns the BIP44 cointype for this context.
func (c KeyContext) CoinType() uint32 {
	switch c {
	case KeyContextAddress:
		return 283
	case KeyContextIdentity:
		return 0
	default:
		return 0
	}
}

// BIP32DerivationType selects how PRF output is folded into the child
// left scalar. Peikert is the default; Khovratovich exists for
// compatibility with prior test vectors and peer libraries.
type BIP32DerivationType int

const (
	Peikert BIP32DerivationType = iota
	Khovratovich
)

// CanonicalPath returns the BIP44-style path m/44'/cointype'/account'/change/keyIndex
// used by KeyGen, with only the first three levels hardened.
func CanonicalPath(context KeyContext, account, change, keyIndex uint32) []DerivationIndex {
	return []DerivationIndex{
		Harden(44),
		Harden(context.CoinType()),
		Harden(account),
		DerivationIndex(change),
		DerivationIndex(keyIndex),
	}
}
