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

import "errors"

var (
	// ErrUnusableSeed is returned by NewRootKey when the pre-clamp left
	// scalar has bit 5 of its last byte set — the standard
	// BIP32-Ed25519 safety check.
	ErrUnusableSeed = errors.New("model: unusable seed")

	// ErrHardPublicDerivationForbidden is returned when a hardened
	// index is supplied to a public-only derivation walk.
	ErrHardPublicDerivationForbidden = errors.New("model: hardened derivation requires the private extended key")
)
