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

// Package ecdh derives symmetric shared secrets between two leaf keys
// by converting their Ed25519 identities to X25519 and running a
// canonically-ordered Diffie-Hellman exchange.
package ecdh

import "errors"

// ErrWeakPoint is returned when the raw X25519 Diffie-Hellman output is
// the all-zero point, which would happen if the peer's public key is a
// low-order point.
var ErrWeakPoint = errors.New("ecdh: shared point is the all-zero weak point")
