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

package primitives

// Zero overwrites b with zeros in place. It is a no-op for a nil or empty slice.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Zero32 overwrites a with zeros in place.
func Zero32(a *[32]byte) {
	if a == nil {
		return
	}
	for i := range a {
		a[i] = 0
	}
}

// Zero64 overwrites a with zeros in place.
func Zero64(a *[64]byte) {
	if a == nil {
		return
	}
	for i := range a {
		a[i] = 0
	}
}
