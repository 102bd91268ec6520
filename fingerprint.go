// Copyright 2026 Blink Labs Software
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

package wirestruct

import (
	"encoding/hex"
	"sync"

	_cbor "github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"
)

var (
	cachedEncMode     _cbor.EncMode
	cachedEncModeErr  error
	cachedEncModeOnce sync.Once
)

// getEncMode returns a cached deterministic EncMode, initializing it on
// first use
func getEncMode() (_cbor.EncMode, error) {
	cachedEncModeOnce.Do(func() {
		encOptions := _cbor.EncOptions{
			// Canonical ordering keeps the fingerprint stable
			Sort: _cbor.SortCoreDeterministic,
		}
		cachedEncMode, cachedEncModeErr = encOptions.EncMode()
	})
	return cachedEncMode, cachedEncModeErr
}

// Fingerprint returns the blake2b-256 digest of the definition's canonical
// layout. Producer and consumer share their compiled schemas out of band;
// comparing fingerprints lets them assert that agreement before exchanging
// payload bytes. The digest covers wire layout only (field names, order,
// widths, signedness, declared byte orders, nesting); defaults and
// validators don't affect it.
func (d *Definition) Fingerprint() ([]byte, error) {
	em, err := getEncMode()
	if err != nil {
		return nil, err
	}
	layout, err := em.Marshal(d.describeLayout())
	if err != nil {
		return nil, err
	}
	digest := blake2b.Sum256(layout)
	return digest[:], nil
}

// FingerprintString returns the hex-encoded Fingerprint
func (d *Definition) FingerprintString() (string, error) {
	digest, err := d.Fingerprint()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(digest), nil
}
