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

// Hooks are the per-definition lifecycle callbacks. They are ordinary
// operations invoked at fixed points, not events distributed to multiple
// listeners; each has a no-op (or default-check) fallback when nil.
//
// BeforeSerialize and AfterSerialize fire around Serialize unless the
// effective dry-run mode suppresses them; the encoding itself always
// happens. Validate runs after a decode when validation is enabled; when
// nil the default is Definition.CheckFields. Nested structures fire their
// own hooks as their definitions' engines run.
type Hooks struct {
	BeforeSerialize func(*Instance)
	AfterSerialize  func(*Instance, []byte)
	Validate        func(*Instance) error
}
