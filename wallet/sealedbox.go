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

package wallet

import (
	"fmt"

	"github.com/piprate/xhdwallet/primitives"
	"github.com/rs/zerolog/log"
)

// SealedEncrypt anonymously encrypts msg to recipientPk, for the usage
// example in the package docs. It is not used by KeyGen, SignData, or
// ECDH.
func SealedEncrypt(msg, recipientPk []byte) []byte {
	return primitives.SealedBoxEncrypt(msg, recipientPk)
}

// SealedDecrypt opens a message produced by SealedEncrypt using the
// recipient's 64-byte Ed25519 secret key. A malformed ciphertext can
// panic deep inside the underlying libsodium binding; that panic is
// recovered and reported as an error, mirroring the teacher's
// AnonDecrypt.
func SealedDecrypt(ciphertext, recipientSk []byte) (msg []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn().Str("reason", fmt.Sprintf("%v", r)).Msg("Recovered in wallet.SealedDecrypt")
			err = fmt.Errorf("wallet: recovered while opening sealed box: %v", r)
		}
	}()
	return primitives.SealedBoxDecrypt(ciphertext, recipientSk)
}
