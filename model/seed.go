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
	"fmt"

	"github.com/piprate/xhdwallet/primitives"
)

// SeedSize is the expected length, in bytes, of a root seed.
const SeedSize = 64

// chainCodeDomainTag domain-separates the root chaincode derivation
// from every other BLAKE2b use in this package.
const chainCodeDomainTag = 0x01

// NewRootKey converts a 64-byte seed into a 96-byte extended root key.
//
//  1. k = SHA-512(seed), split kL || kR.
//  2. Reject with ErrUnusableSeed if bit 5 of the pre-clamp kL[31] is set.
//  3. Clamp kL.
//  4. c = BLAKE2b-256(0x01 || seed).
//
// The caller owns seed and must zero it after this call returns.
func NewRootKey(seed []byte) (ExtendedKey, error) {
	if len(seed) != SeedSize {
		return ExtendedKey{}, fmt.Errorf("model: seed must be %d bytes, got %d", SeedSize, len(seed))
	}

	k := primitives.SHA512(seed)
	defer primitives.Zero64(&k)

	var kL, kR [32]byte
	copy(kL[:], k[0:32])
	copy(kR[:], k[32:64])
	defer primitives.Zero32(&kL)

	if kL[31]&0x20 != 0 {
		return ExtendedKey{}, ErrUnusableSeed
	}

	clamp(&kL)

	c, err := primitives.Blake2b256([]byte{chainCodeDomainTag}, seed)
	if err != nil {
		return ExtendedKey{}, err
	}

	return NewExtendedKey(kL, kR, c), nil
}

// clamp enforces the Ed25519 bit pattern required of a BIP32-Ed25519
// left scalar: bits 0,1,2 of byte 0 cleared, bit 7 of byte 31 cleared,
// bit 6 of byte 31 set.
func clamp(kL *[32]byte) {
	kL[0] &= 0xF8
	kL[31] &= 0x7F
	kL[31] |= 0x40
}

// IsClamped reports whether kL carries the expected clamp bit pattern
// and, as NewRootKey guarantees for a root key, has bit 5 of byte 31
// clear. It is used by tests to assert the clamp-preservation invariant.
func IsClamped(kL [32]byte) bool {
	return kL[0]&0x07 == 0 && kL[31]&0xE0 == 0x40
}
