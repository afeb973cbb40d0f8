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

import (
	"encoding/base64"
	"fmt"

	"github.com/piprate/xhdwallet/utils/jsonw"
	"github.com/shamaton/msgpack/v2"
	"github.com/xeipuuv/gojsonschema"
)

// Encoding selects how SignData's input is interpreted before schema
// validation. The signature itself is always computed over the
// original, un-decoded data.
type Encoding int

const (
	// EncodingNone treats data as a raw byte array.
	EncodingNone Encoding = iota
	// EncodingBase64 treats data as an ASCII base64 string; the
	// decoded bytes are subject to the inner tag-rejection check.
	EncodingBase64
	// EncodingMsgpack treats data as a msgpack-encoded structured value.
	EncodingMsgpack
)

// SignMetadata carries the decoding and schema-validation parameters
// for SignData.
type SignMetadata struct {
	Encoding Encoding
	Schema   *gojsonschema.Schema
}

func (e Encoding) String() string {
	switch e {
	case EncodingNone:
		return "none"
	case EncodingBase64:
		return "base64"
	case EncodingMsgpack:
		return "msgpack"
	default:
		return "unknown"
	}
}

// MarshalJSON renders the encoding as its lowercase name, via the
// teacher's sonic-based jsonw wrapper.
func (e Encoding) MarshalJSON() ([]byte, error) {
	return jsonw.Marshal(e.String())
}

// UnmarshalJSON parses an encoding name produced by MarshalJSON.
func (e *Encoding) UnmarshalJSON(data []byte) error {
	var name string
	if err := jsonw.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "none":
		*e = EncodingNone
	case "base64":
		*e = EncodingBase64
	case "msgpack":
		*e = EncodingMsgpack
	default:
		return fmt.Errorf("%w: unknown encoding name %q", ErrInvalidEncoding, name)
	}
	return nil
}

// decode returns the decoded bytes (for EncodingNone/EncodingBase64,
// used for the inner tag check) and the gojsonschema document loader
// to validate against: the decoded form for EncodingNone and
// EncodingMsgpack, the base64 string itself for EncodingBase64.
func decode(data []byte, encoding Encoding) ([]byte, gojsonschema.JSONLoader, error) {
	switch encoding {
	case EncodingNone:
		return data, gojsonschema.NewBytesLoader(data), nil

	case EncodingBase64:
		decoded := make([]byte, base64.StdEncoding.DecodedLen(len(data)))
		n, err := base64.StdEncoding.Decode(decoded, data)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
		}
		decoded = decoded[:n]
		// The schema validates the base64 string itself (e.g. a
		// "type: string" auth-challenge schema), not the raw bytes.
		return decoded, gojsonschema.NewGoLoader(string(data)), nil

	case EncodingMsgpack:
		var value any
		if err := msgpack.Unmarshal(data, &value); err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
		}
		return nil, gojsonschema.NewGoLoader(value), nil

	default:
		return nil, nil, fmt.Errorf("%w: unknown encoding %d", ErrInvalidEncoding, encoding)
	}
}
