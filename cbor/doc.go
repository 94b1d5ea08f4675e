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

// Package cbor provides a forward-only pull cursor over CBOR byte streams,
// built around github.com/fxamacker/cbor/v2 for whole-value decoding.
//
// The central type is Reader: it identifies the value at the current
// position, extracts typed scalars without consuming them, and descends
// into arrays and maps via child Readers whose final position is merged
// back with Leave. Value headers are parsed directly from the byte slice so
// introspection never consumes content; string extraction and whole-value
// skipping delegate to the fxamacker decoder, which handles
// indefinite-length chunking and UTF-8 validation.
//
// Decode and Encode are thin helpers over the same library for callers
// (and tests) that want ordinary marshaling.
package cbor
