/*
Licensed to the Apache Software Foundation (ASF) under one
or more contributor license agreements.  See the NOTICE file
distributed with this work for additional information
regarding copyright ownership.  The ASF licenses this file
to you under the Apache License, Version 2.0 (the
"License"); you may not use this file except in compliance
with the License.  You may obtain a copy of the License at

  http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing,
software distributed under the License is distributed on an
"AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
KIND, either express or implied.  See the License for the
specific language governing permissions and limitations
under the License.
*/

// Package metrics counts codec activity with Prometheus.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/k-vswitch/ofcodec/buffer"
	"github.com/k-vswitch/ofcodec/openflow"
)

const namespace = "ofcodec"

// Collector implements openflow.Observer and prometheus.Collector.
type Collector struct {
	decoded  *prometheus.CounterVec
	skipped  *prometheus.CounterVec
	failures *prometheus.CounterVec
}

var _ openflow.Observer = &Collector{}

func NewCollector() *Collector {
	return &Collector{
		decoded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "decoder",
				Name:      "messages_total",
				Help:      "Messages decoded, by protocol version and message kind.",
			},
			[]string{"version", "kind"},
		),
		skipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "decoder",
				Name:      "skipped_bytes_total",
				Help:      "Bytes inside a message's declared length left unread by its decoder.",
			},
			[]string{"version", "kind"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "decoder",
				Name:      "failures_total",
				Help:      "Messages that failed to decode, by protocol version and reason.",
			},
			[]string{"version", "reason"},
		),
	}
}

func (c *Collector) Decoded(h openflow.Header, kind openflow.Kind, skipped int) {
	version := h.Version.String()
	c.decoded.WithLabelValues(version, kind.String()).Inc()
	if skipped > 0 {
		c.skipped.WithLabelValues(version, kind.String()).Add(float64(skipped))
	}
}

func (c *Collector) Failed(h openflow.Header, err error) {
	c.failures.WithLabelValues(h.Version.String(), Reason(err)).Inc()
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.decoded.Describe(ch)
	c.skipped.Describe(ch)
	c.failures.Describe(ch)
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.decoded.Collect(ch)
	c.skipped.Collect(ch)
	c.failures.Collect(ch)
}

// Reason classifies a decode error into a low cardinality label.
func Reason(err error) string {
	var (
		unknownType *openflow.UnknownTypeError
		truncated   *openflow.TruncatedListError
		length      *openflow.InvalidLengthError
		value       *openflow.UnknownValueError
		underflow   *buffer.UnderflowError
	)
	switch {
	case errors.As(err, &unknownType):
		return "unknown_type"
	case errors.As(err, &truncated):
		return "truncated_list"
	case errors.As(err, &length):
		return "invalid_length"
	case errors.As(err, &value):
		return "unknown_value"
	case errors.As(err, &underflow):
		return "underflow"
	}
	return "other"
}
