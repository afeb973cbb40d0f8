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

import "github.com/piprate/xhdwallet/model"

// SignData runs the safety pipeline described in the package docs
// before signing: outer tag rejection, decoding per metadata.Encoding,
// an inner tag check on base64-decoded bytes, and schema validation of
// the decoded form (for EncodingBase64, of the base64 string itself).
// The signature is computed over the original data
// bytes, not the decoded form.
func SignData(rootKey model.ExtendedKey, context model.KeyContext, account, change, keyIndex uint32, data []byte, metadata SignMetadata, variant model.BIP32DerivationType) ([]byte, error) {
	if hasReservedTag(data) {
		return nil, ErrDataIsTransactionLike
	}

	decoded, documentLoader, err := decode(data, metadata.Encoding)
	if err != nil {
		return nil, err
	}

	if metadata.Encoding == EncodingBase64 && hasReservedTag(decoded) {
		return nil, ErrDataIsTransactionLike
	}

	if metadata.Schema != nil {
		if err := validateAgainstSchema(metadata.Schema, documentLoader); err != nil {
			return nil, err
		}
	}

	leaf, err := deriveLeaf(rootKey, context, account, change, keyIndex, variant)
	if err != nil {
		return nil, err
	}
	defer leaf.Zero()

	return signWithExtendedKey(leaf, data)
}
