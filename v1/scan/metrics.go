// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package scan

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/open-policy-agent/atom/v1/atom"
)

// Metrics counts scanned identifiers by kind and representation. A Metrics
// value may be shared by scanners running on different goroutines.
type Metrics struct {
	identifiers *prometheus.CounterVec
}

// NewMetrics creates the scanner collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		identifiers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "atom",
			Name:      "identifiers_total",
			Help:      "Identifiers found in scanned markup, by kind and representation.",
		}, []string{"kind", "variant"}),
	}
	reg.MustRegister(m.identifiers)
	return m
}

func (m *Metrics) observe(id Identifier) {
	variant := atom.KindOwned
	if id.Name.IsStatic() {
		variant = atom.KindStatic
	}
	m.identifiers.WithLabelValues(id.Kind.String(), variant.String()).Inc()
}
