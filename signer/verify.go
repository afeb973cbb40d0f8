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

import "github.com/piprate/xhdwallet/primitives"

// VerifyWithPublicKey is a thin wrapper over detached Ed25519
// verification. It does not derive keys and applies no tag policy:
// verification is permissive by design.
func VerifyWithPublicKey(sig, msg, pk []byte) bool {
	return primitives.DetachedVerify(pk, msg, sig)
}
