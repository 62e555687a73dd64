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

package httpx

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"dirpx.dev/dresponse"
	"dirpx.dev/dresponse/kind"
)

// Decode parses a body previously produced by Write.
func Decode[T any](r io.Reader) (dresponse.Response[T], error) {
	var b body[T]
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return dresponse.Response[T]{}, fmt.Errorf("httpx: decode response: %w", err)
	}
	k, err := kind.Parse(b.Status.Kind)
	if err != nil {
		return dresponse.Response[T]{}, fmt.Errorf("httpx: decode response: %w", err)
	}
	return dresponse.Page(dresponse.New(k, b.Status.Message), b.Content, b.Count), nil
}

// Read decodes the body of resp. Responses without a body (e.g. 204) are
// reconstructed from the status code alone via KindForHTTP, with an empty
// message. Read does not close resp.Body.
func Read[T any](resp *http.Response) (dresponse.Response[T], error) {
	if !bodyAllowed(resp.StatusCode) || resp.ContentLength == 0 {
		return dresponse.Empty[T](dresponse.New(KindForHTTP(resp.StatusCode), "")), nil
	}
	return Decode[T](resp.Body)
}

// KindForHTTP maps an HTTP status back to the first kind, in canonical
// order, whose default HTTP status matches. 204 therefore reads as Updated.
// Unmatched 2xx codes read as OK and everything else as InternalError.
func KindForHTTP(code int) kind.Kind {
	for _, k := range kind.All() {
		if k.HTTPStatus() == code {
			return k
		}
	}
	if code >= 200 && code <= 299 {
		return kind.OK
	}
	return kind.InternalError
}
