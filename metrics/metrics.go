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

// Package metrics counts emitted errors with Prometheus.
//
// A Recorder implements apis.Observer. Hand it to httpx.Writer or the grpcx
// interceptors and every error they write is counted by transport, kind,
// type and resolved status:
//
//	rec, err := metrics.NewRecorder(prometheus.DefaultRegisterer)
//	w := httpx.Writer{Mapper: m, Observer: rec}
//
// The resulting series is
//
//	errstd_errors_total{transport="http",kind="IoError",type="FileNotExists",status="404"}
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"dirpx.dev/errstd/apis"
)

var _ apis.Observer = (*Recorder)(nil)

// Recorder is a concurrency-safe apis.Observer backed by a CounterVec.
type Recorder struct {
	errors *prometheus.CounterVec
}

// Option configures NewRecorder.
type Option func(*prometheus.CounterOpts)

// WithNamespace replaces the metric namespace (default "errstd").
func WithNamespace(ns string) Option {
	return func(o *prometheus.CounterOpts) { o.Namespace = ns }
}

// WithConstLabels attaches constant labels, e.g. the service name.
func WithConstLabels(l prometheus.Labels) Option {
	return func(o *prometheus.CounterOpts) { o.ConstLabels = l }
}

// NewRecorder creates the counter and registers it with reg. A nil reg
// leaves the counter unregistered, which is handy in tests.
func NewRecorder(reg prometheus.Registerer, opts ...Option) (*Recorder, error) {
	co := prometheus.CounterOpts{
		Namespace: "errstd",
		Name:      "errors_total",
		Help:      "Total number of errors written by transport adapters.",
	}
	for _, opt := range opts {
		opt(&co)
	}
	r := &Recorder{
		errors: prometheus.NewCounterVec(co, []string{"transport", "kind", "type", "status"}),
	}
	if reg != nil {
		if err := reg.Register(r.errors); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Observe counts one emitted error. The status label is the HTTP status for
// the "http" transport and the gRPC code name otherwise.
func (r *Recorder) Observe(transport string, f apis.Failure, st apis.Status) {
	if r == nil || f == nil {
		return
	}
	var k, typ string
	if ke, ok := f.(apis.KindedError); ok {
		k = string(ke.Kind())
	}
	if te, ok := f.(apis.TypedError); ok {
		typ = te.Type()
	}
	status := st.GRPC.String()
	if transport == "http" {
		status = strconv.Itoa(st.HTTP)
	}
	r.errors.WithLabelValues(transport, k, typ, status).Inc()
}

// Collector exposes the underlying counter, e.g. for a custom registry.
func (r *Recorder) Collector() prometheus.Collector {
	return r.errors
}
