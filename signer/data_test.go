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

package signer_test

import (
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/piprate/xhdwallet/model"
	. "github.com/piprate/xhdwallet/signer"
	"github.com/shamaton/msgpack/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const authChallengeSchema = `{"type": "string", "minLength": 1}`

func TestSignData_Base64ChallengeRoundTrips(t *testing.T) {
	root, err := model.NewRootKey(fixedSeed())
	require.NoError(t, err)

	schema, err := CompileSchema([]byte(authChallengeSchema))
	require.NoError(t, err)

	challenge := make([]byte, 32)
	_, err = rand.Read(challenge)
	require.NoError(t, err)
	encoded := []byte(base64.StdEncoding.EncodeToString(challenge))

	sig, err := SignData(root, model.KeyContextIdentity, 0, 0, 0, encoded, SignMetadata{
		Encoding: EncodingBase64,
		Schema:   schema,
	}, model.Peikert)
	require.NoError(t, err)

	pk, err := model.KeyGen(root, model.KeyContextIdentity, 0, 0, model.Peikert)
	require.NoError(t, err)
	assert.True(t, VerifyWithPublicKey(sig, encoded, pk.Bytes()))
}

func TestSignData_RejectsOuterTag(t *testing.T) {
	root, err := model.NewRootKey(fixedSeed())
	require.NoError(t, err)

	for _, tag := range []string{"TX", "MX", "Program", "progData"} {
		payload := append([]byte(tag), []byte("anything")...)
		_, err := SignData(root, model.KeyContextIdentity, 0, 0, 0, payload, SignMetadata{Encoding: EncodingNone}, model.Peikert)
		require.ErrorIs(t, err, ErrDataIsTransactionLike, "tag %s", tag)
	}
}

func TestSignData_RejectsInnerTagAfterBase64Decode(t *testing.T) {
	root, err := model.NewRootKey(fixedSeed())
	require.NoError(t, err)

	for _, tag := range []string{"TX", "MX", "Program", "progData"} {
		inner := append([]byte(tag), []byte("payload")...)
		encoded := []byte(base64.StdEncoding.EncodeToString(inner))
		_, err := SignData(root, model.KeyContextIdentity, 0, 0, 0, encoded, SignMetadata{Encoding: EncodingBase64}, model.Peikert)
		require.ErrorIs(t, err, ErrDataIsTransactionLike, "tag %s", tag)
	}
}

func TestSignData_MsgpackRoundTrips(t *testing.T) {
	root, err := model.NewRootKey(fixedSeed())
	require.NoError(t, err)

	schema, err := CompileSchema([]byte(`{"type": "object", "required": ["foo"]}`))
	require.NoError(t, err)

	payload, err := msgpack.Marshal(map[string]any{"foo": "bar"})
	require.NoError(t, err)

	sig, err := SignData(root, model.KeyContextIdentity, 0, 0, 0, payload, SignMetadata{
		Encoding: EncodingMsgpack,
		Schema:   schema,
	}, model.Peikert)
	require.NoError(t, err)

	pk, err := model.KeyGen(root, model.KeyContextIdentity, 0, 0, model.Peikert)
	require.NoError(t, err)
	assert.True(t, VerifyWithPublicKey(sig, payload, pk.Bytes()))
}

func TestSignData_MsgpackSchemaFailure(t *testing.T) {
	root, err := model.NewRootKey(fixedSeed())
	require.NoError(t, err)

	schema, err := CompileSchema([]byte(`{"type": "object", "required": ["foo"]}`))
	require.NoError(t, err)

	payload, err := msgpack.Marshal(map[string]any{"bar": 1})
	require.NoError(t, err)

	_, err = SignData(root, model.KeyContextIdentity, 0, 0, 0, payload, SignMetadata{
		Encoding: EncodingMsgpack,
		Schema:   schema,
	}, model.Peikert)
	require.ErrorIs(t, err, ErrInvalidSchema)
}

func TestSignData_SchemaFailure(t *testing.T) {
	root, err := model.NewRootKey(fixedSeed())
	require.NoError(t, err)

	schema, err := CompileSchema([]byte(`{"type": "object", "required": ["foo"]}`))
	require.NoError(t, err)

	_, err = SignData(root, model.KeyContextIdentity, 0, 0, 0, []byte(`{"bar": 1}`), SignMetadata{
		Encoding: EncodingNone,
		Schema:   schema,
	}, model.Peikert)
	require.ErrorIs(t, err, ErrInvalidSchema)
}
