// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package quorum

import (
	"github.com/luxfi/metric"
)

const resultLabel = "result"

var lookupLabels = []string{resultLabel}

// Metrics counts quorum evaluations and registry lookups. The algebra
// functions themselves stay pure; metering happens at the seams that hold a
// *Metrics: the Evaluator and the Registry.
type Metrics struct {
	numSliceChecks     metric.Counter
	numVBlockingChecks metric.Counter
	numQuorumChecks    metric.Counter
	numQSetLookups     metric.CounterVec
}

func NewMetrics(registerer metric.Registerer) (*Metrics, error) {
	m := &Metrics{
		numSliceChecks: metric.NewCounter(metric.CounterOpts{
			Name: "fba_quorum_slice_checks",
			Help: "number of quorum slice evaluations",
		}),
		numVBlockingChecks: metric.NewCounter(metric.CounterOpts{
			Name: "fba_vblocking_checks",
			Help: "number of v-blocking evaluations",
		}),
		numQuorumChecks: metric.NewCounter(metric.CounterOpts{
			Name: "fba_quorum_checks",
			Help: "number of fixed-point quorum evaluations",
		}),
		numQSetLookups: metric.NewCounterVec(
			metric.CounterOpts{
				Name: "fba_qset_lookups",
				Help: "number of quorum set registry lookups",
			},
			lookupLabels,
		),
	}

	for _, collector := range []metric.Counter{
		m.numSliceChecks,
		m.numVBlockingChecks,
		m.numQuorumChecks,
	} {
		if err := registerer.Register(metric.AsCollector(collector)); err != nil {
			return nil, err
		}
	}
	if err := registerer.Register(metric.AsCollector(m.numQSetLookups)); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Metrics) markLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.numQSetLookups.With(metric.Labels{
		resultLabel: result,
	}).Inc()
}
