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

package model_test

import (
	"testing"

	. "github.com/piprate/xhdwallet/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func canonicalTestPath() []DerivationIndex {
	return CanonicalPath(KeyContextAddress, 0, 0, 0)
}

func TestDeriveChildPrivate_ClampPreserved(t *testing.T) {
	root, err := NewRootKey(fixedSeed())
	require.NoError(t, err)

	for _, variant := range []BIP32DerivationType{Peikert, Khovratovich} {
		child, err := DeriveChildPrivate(root, Harden(44), variant)
		require.NoError(t, err)
		assert.True(t, IsClamped(child.KL()))
	}
}

func TestDeriveKey_Deterministic(t *testing.T) {
	root, err := NewRootKey(fixedSeed())
	require.NoError(t, err)

	path := CanonicalPath(KeyContextAddress, 0, 0, 0)
	leaf1, _, err := DeriveKey(root, path, true, Peikert)
	require.NoError(t, err)
	leaf2, _, err := DeriveKey(root, path, true, Peikert)
	require.NoError(t, err)
	assert.Equal(t, leaf1.Bytes(), leaf2.Bytes())
}

func TestDeriveKey_VariantsDiverge(t *testing.T) {
	root, err := NewRootKey(fixedSeed())
	require.NoError(t, err)

	path := CanonicalPath(KeyContextAddress, 0, 0, 0)
	peikert, _, err := DeriveKey(root, path, true, Peikert)
	require.NoError(t, err)
	khovratovich, _, err := DeriveKey(root, path, true, Khovratovich)
	require.NoError(t, err)
	assert.NotEqual(t, peikert.Bytes(), khovratovich.Bytes())
}

// TestDeriveKey_PublicPrivateAgreement exercises the correspondence
// invariant from the spec: public-only derivation over a soft path
// yields the same leaf public key as private derivation of the same
// path, for both variants.
func TestDeriveKey_PublicPrivateAgreement(t *testing.T) {
	root, err := NewRootKey(fixedSeed())
	require.NoError(t, err)

	hardenedPrefix := []DerivationIndex{Harden(44), Harden(KeyContextAddress.CoinType()), Harden(0)}
	softSuffix := []DerivationIndex{0, 1, 2}

	for _, variant := range []BIP32DerivationType{Peikert, Khovratovich} {
		parentXsk, _, err := DeriveKey(root, hardenedPrefix, true, variant)
		require.NoError(t, err)
		parentXpk, err := parentXsk.ExtendedPublicKey()
		require.NoError(t, err)

		fullPath := append(append([]DerivationIndex{}, hardenedPrefix...), softSuffix...)
		privLeaf, _, err := DeriveKey(root, fullPath, true, variant)
		require.NoError(t, err)
		privPk, err := privLeaf.PublicKey()
		require.NoError(t, err)

		node := parentXpk
		for _, idx := range softSuffix {
			node, err = DeriveChildPublic(node, idx, variant)
			require.NoError(t, err)
		}
		assert.Equal(t, privPk.Bytes(), node.PK().Bytes())
	}
}

func TestDeriveChildPublic_RejectsHardened(t *testing.T) {
	root, err := NewRootKey(fixedSeed())
	require.NoError(t, err)
	xpk, err := root.ExtendedPublicKey()
	require.NoError(t, err)

	_, err = DeriveChildPublic(xpk, Harden(0), Peikert)
	require.ErrorIs(t, err, ErrHardPublicDerivationForbidden)
}

func TestKeyGen_MatchesDeriveKey(t *testing.T) {
	root, err := NewRootKey(fixedSeed())
	require.NoError(t, err)

	pk, err := KeyGen(root, KeyContextAddress, 0, 0, Peikert)
	require.NoError(t, err)

	leaf, _, err := DeriveKey(root, canonicalTestPath(), true, Peikert)
	require.NoError(t, err)
	expected, err := leaf.PublicKey()
	require.NoError(t, err)

	assert.Equal(t, expected.Bytes(), pk.Bytes())
}

func BenchmarkKeyGen(b *testing.B) {
	root, err := NewRootKey(fixedSeed())
	require.NoError(b, err)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := KeyGen(root, KeyContextAddress, 0, uint32(i), Peikert)
		require.NoError(b, err)
	}
}
