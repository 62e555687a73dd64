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

package adapter

import (
	"dirpx.dev/dresponse"
	"dirpx.dev/dresponse/apis"
	"dirpx.dev/dresponse/kind"
	"dirpx.dev/dresponse/mapper"
)

// ToDescriptor converts a status together with its resolved transport
// statuses into a portable StatusDescriptor.
//
// The descriptor is intended for structured logging, tracing, or message bus
// propagation. It carries both the logical kind and the concrete transport
// statuses (HTTP and gRPC).
func ToDescriptor(s dresponse.Status, t apis.Transport) apis.StatusDescriptor {
	k := s.Kind()
	return apis.StatusDescriptor{
		Kind:       k.String(),
		Ordinal:    k.Ordinal(),
		Success:    k.IsSuccess(),
		HTTPStatus: t.HTTP,
		GRPCCode:   int(t.GRPC),
		Message:    s.Message,
	}
}

// Describe resolves k through m and returns its descriptor without a
// message. A nil mapper means the library defaults.
func Describe(k kind.Kind, m apis.Mapper) apis.StatusDescriptor {
	if m == nil {
		m = mapper.Default()
	}
	return ToDescriptor(dresponse.New(k, ""), m.Status(k))
}

// DescribeAll returns the descriptor of every kind in canonical order.
func DescribeAll(m apis.Mapper) []apis.StatusDescriptor {
	all := kind.All()
	out := make([]apis.StatusDescriptor, 0, len(all))
	for _, k := range all {
		out = append(out, Describe(k, m))
	}
	return out
}

// ToView converts a status into the public StatusView. This function
// performs no redaction or filtering: the message is exposed as-is.
// Correlation fields are left for the HTTP layer to fill.
func ToView(s dresponse.Status) apis.StatusView {
	return apis.StatusView{
		Kind:    s.Kind().String(),
		Message: s.Message,
		Success: s.Success(),
	}
}
