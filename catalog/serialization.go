// Copyright 2025 Poiesic Systems
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


package catalog

import (
	"github.com/poiesic/wayfarer/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalDestination serializes a Destination to bytes.
func MarshalDestination(dest *core.Destination) []byte {
	buf := make([]byte, core.DestinationMUS.Size(*dest))
	core.DestinationMUS.Marshal(*dest, buf)
	return buf
}

// UnmarshalDestination deserializes a Destination from bytes.
func UnmarshalDestination(data []byte) (*core.Destination, error) {
	dest, _, err := core.DestinationMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &dest, nil
}

// MarshalPackage serializes a Package to bytes.
func MarshalPackage(pkg *core.Package) []byte {
	buf := make([]byte, core.PackageMUS.Size(*pkg))
	core.PackageMUS.Marshal(*pkg, buf)
	return buf
}

// UnmarshalPackage deserializes a Package from bytes.
func UnmarshalPackage(data []byte) (*core.Package, error) {
	pkg, _, err := core.PackageMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

// MarshalFingerprint serializes a Fingerprint to bytes.
func MarshalFingerprint(fp *core.Fingerprint) []byte {
	buf := make([]byte, core.FingerprintMUS.Size(*fp))
	core.FingerprintMUS.Marshal(*fp, buf)
	return buf
}

// UnmarshalFingerprint deserializes a Fingerprint from bytes.
func UnmarshalFingerprint(data []byte) (*core.Fingerprint, error) {
	fp, _, err := core.FingerprintMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &fp, nil
}
