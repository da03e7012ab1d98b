/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/
// Package ordered is a fixture module spread over several files, with a
// provider declared only in its test files.
package ordered

import "dirpx.dev/capx/capability"

// First is declared in the first file.
type First struct {
	capability.Base
}

// Second follows First in the same file.
type Second struct {
	capability.Base
}
