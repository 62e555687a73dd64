/*
   Copyright 2025 The DIRPX Authors

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

// Package dresponse is the dirpx service response protocol.
//
// Every service operation reports its outcome as a Response: exactly one
// Status (a kind.Kind plus a free-text message), an optional content payload
// and an optional pagination count.
//
//	func (s *Service) Get(id int) dresponse.Response[Item] {
//	    it, ok := s.items[id]
//	    if !ok {
//	        return dresponse.Empty[Item](dresponse.NotFound("no such item"))
//	    }
//	    return dresponse.With(dresponse.OK(), it)
//	}
//
// The package is a pure value-construction layer: nothing here performs I/O,
// blocks, or fails. Transport concerns live in sibling packages:
//
//   - dirpx.dev/dresponse/mapper resolves kinds to HTTP and gRPC codes;
//   - dirpx.dev/dresponse/httpx writes responses to an http.ResponseWriter;
//   - dirpx.dev/dresponse/grpcx carries failure statuses over gRPC.
//
// Failure statuses can also travel through ordinary Go error returns via
// Status.Err and FromError.
package dresponse
