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

package primitives_test

import (
	"crypto/ed25519"
	"testing"

	. "github.com/piprate/xhdwallet/primitives"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarAddMod2to256_Wraps(t *testing.T) {
	var a, b [32]byte
	a[0] = 0xFF
	b[0] = 0x02
	out := ScalarAddMod2to256(a, b)
	assert.Equal(t, byte(0x01), out[0])
	assert.Equal(t, byte(0x01), out[1])
}

func TestShiftLeft3(t *testing.T) {
	in := make([]byte, 32)
	in[0] = 0x01
	out := ShiftLeft3(in)
	assert.Equal(t, byte(0x08), out[0])
	assert.Equal(t, byte(0x00), out[1])
}

func TestScalarBaseMult_MatchesStdlibKeygen(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	var seed [32]byte
	copy(seed[:], priv.Seed())

	h := SHA512(seed[:])
	var kL [32]byte
	copy(kL[:], h[:32])
	kL[0] &= 0xF8
	kL[31] &= 0x7F
	kL[31] |= 0x40

	pk, err := ScalarBaseMult(kL)
	require.NoError(t, err)
	assert.Equal(t, []byte(pub), pk[:])
}

func TestPointAdd_Commutative(t *testing.T) {
	var a, b [32]byte
	a[0] = 2
	b[0] = 3
	pa, err := ScalarBaseMult(a)
	require.NoError(t, err)
	pb, err := ScalarBaseMult(b)
	require.NoError(t, err)

	sum1, err := PointAdd(pa, pb)
	require.NoError(t, err)
	sum2, err := PointAdd(pb, pa)
	require.NoError(t, err)
	assert.Equal(t, sum1, sum2)
}

func TestDetachedVerify_RoundTrip(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	msg := []byte("message")
	sig := ed25519.Sign(priv, msg)
	assert.True(t, DetachedVerify(pub, msg, sig))
	assert.False(t, DetachedVerify(pub, []byte("tampered"), sig))
}

func TestSecretbox_RoundTrip(t *testing.T) {
	var key [32]byte
	for i := range key {
		key[i] = byte(i)
	}
	msg := []byte("Hello, Bob!")
	ct := SecretboxSeal(msg, key)
	pt, err := SecretboxOpen(ct, key)
	require.NoError(t, err)
	assert.Equal(t, msg, pt)
}

func TestEd25519ToCurve25519_X25519Agreement(t *testing.T) {
	alicePub, alicePriv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	bobPub, bobPriv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	aliceSkX, err := Ed25519SkToCurve25519(alicePriv)
	require.NoError(t, err)
	bobPkX, err := Ed25519PkToCurve25519(bobPub)
	require.NoError(t, err)

	bobSkX, err := Ed25519SkToCurve25519(bobPriv)
	require.NoError(t, err)
	alicePkX, err := Ed25519PkToCurve25519(alicePub)
	require.NoError(t, err)

	shared1, err := X25519(aliceSkX, bobPkX)
	require.NoError(t, err)
	shared2, err := X25519(bobSkX, alicePkX)
	require.NoError(t, err)
	assert.Equal(t, shared1, shared2)
}
