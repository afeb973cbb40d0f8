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

import "github.com/piprate/xhdwallet/primitives"

// Seal authenticates and encrypts msg under a shared secret produced by
// ECDH, using a fresh random nonce on every call. This is the usage
// example referenced by the package's external interface: it is not
// part of the shared-secret derivation itself.
func Seal(msg []byte, sharedSecret [32]byte) []byte {
	return primitives.SecretboxSeal(msg, sharedSecret)
}

// Open decrypts and authenticates a ciphertext produced by Seal.
func Open(ciphertext []byte, sharedSecret [32]byte) ([]byte, error) {
	return primitives.SecretboxOpen(ciphertext, sharedSecret)
}
