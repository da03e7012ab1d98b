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

// ErrorSink receives resolution diagnostics. Resolvers call OnError at most
// once per resolution, synchronously, before returning.
type ErrorSink interface {
	OnError(loc Location, msg string)
}

// ErrorSinkFunc adapts a plain function to ErrorSink.
type ErrorSinkFunc func(loc Location, msg string)

// OnError calls f(loc, msg).
func (f ErrorSinkFunc) OnError(loc Location, msg string) {
	f(loc, msg)
}
