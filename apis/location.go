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

package apis

import "strconv"

// Location is a position in the caller's originating document.
// It is carried through for diagnostic attribution only.
type Location struct {
	File   string
	Line   int
	Column int
}

// IsValid reports whether the location carries a line number.
func (l Location) IsValid() bool {
	return l.Line > 0
}

// String renders "file:line:col", omitting missing parts.
func (l Location) String() string {
	s := l.File
	if l.IsValid() {
		if s != "" {
			s += ":"
		}
		s += strconv.Itoa(l.Line)
		if l.Column > 0 {
			s += ":" + strconv.Itoa(l.Column)
		}
	}
	if s == "" {
		s = "-"
	}
	return s
}
