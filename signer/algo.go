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

// algorandTagPrefixes lists the Algorand consensus domain-separation
// prefixes. A byte string carrying one of these as a prefix is
// indistinguishable, at the signature layer, from a real consensus
// object and must never be signed via SignData.
var algorandTagPrefixes = [][]byte{
	[]byte("TX"),
	[]byte("MX"),
	[]byte("Program"),
	[]byte("progData"),
}

func hasReservedTag(data []byte) bool {
	for _, tag := range algorandTagPrefixes {
		if len(data) >= len(tag) && string(data[:len(tag)]) == string(tag) {
			return true
		}
	}
	return false
}

// SignAlgoTransaction derives the leaf extended key at the canonical
// path for context/account/change/keyIndex and signs prefixEncodedTx,
// which must already carry one of the Algorand domain-separation
// prefixes. There is no tag policy here: the caller is assumed to be
// producing a genuine consensus object.
func SignAlgoTransaction(rootKey model.ExtendedKey, context model.KeyContext, account, change, keyIndex uint32, prefixEncodedTx []byte, variant model.BIP32DerivationType) ([]byte, error) {
	leaf, err := deriveLeaf(rootKey, context, account, change, keyIndex, variant)
	if err != nil {
		return nil, err
	}
	defer leaf.Zero()

	return signWithExtendedKey(leaf, prefixEncodedTx)
}
