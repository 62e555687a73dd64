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
	"strconv"

	"dirpx.dev/dresponse/kind"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts written responses by kind and HTTP status.
type Metrics struct {
	responses *prometheus.CounterVec
}

// NewMetrics creates the response counter and registers it with reg.
// A nil reg leaves the counter unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		responses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "dresponse",
				Subsystem: "http",
				Name:      "responses_total",
				Help:      "Total number of responses written, by kind and HTTP status.",
			},
			[]string{"kind", "code"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.responses)
	}
	return m
}

// Responses exposes the underlying counter, e.g. for tests.
func (m *Metrics) Responses() *prometheus.CounterVec { return m.responses }

func (m *Metrics) observe(k kind.Kind, code int) {
	if m == nil {
		return
	}
	m.responses.WithLabelValues(k.String(), strconv.Itoa(code)).Inc()
}
