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
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// CompileSchema compiles a JSON schema document into the form SignData
// expects, so repeated calls with the same schema avoid recompiling it.
func CompileSchema(schemaJSON []byte) (*gojsonschema.Schema, error) {
	loader := gojsonschema.NewBytesLoader(schemaJSON)
	schema, err := gojsonschema.NewSchema(loader)
	if err != nil {
		return nil, fmt.Errorf("signer: compile schema: %w", err)
	}
	return schema, nil
}

func validateAgainstSchema(schema *gojsonschema.Schema, documentLoader gojsonschema.JSONLoader) error {
	result, err := schema.Validate(documentLoader)
	if err != nil {
		return fmt.Errorf("signer: schema validation: %w", err)
	}
	if !result.Valid() {
		return ErrInvalidSchema
	}
	return nil
}
