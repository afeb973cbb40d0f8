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

// Package signer implements the signing safety gate: Algorand
// transaction signing, schema-validated arbitrary data signing with a
// consensus-tag rejection check, and detached verification. It builds
// directly on the extended keys produced by the model package.
package signer

import "errors"

var (
	// ErrDataIsTransactionLike is returned by SignData when its input,
	// either the raw bytes or the decoded form for base64 encoding,
	// begins with an Algorand consensus domain tag.
	ErrDataIsTransactionLike = errors.New("signer: data begins with a reserved transaction domain tag")

	// ErrInvalidSchema is returned when the decoded payload fails
	// validation against the caller-supplied JSON schema.
	ErrInvalidSchema = errors.New("signer: data failed schema validation")

	// ErrInvalidEncoding is returned when decoding per the requested
	// encoding fails.
	ErrInvalidEncoding = errors.New("signer: failed to decode data per the requested encoding")
)
