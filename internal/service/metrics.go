// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-quote-keeper/models"
)

const (
	syncResultSuccess = "success"
	syncResultFailure = "failure"
	syncResultSkipped = "skipped"
)

// Metrics holds the counters exported by the quote services. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	syncRuns       *prometheus.CounterVec
	syncNew        prometheus.Counter
	syncConflicts  prometheus.Counter
	quotesAdded    prometheus.Counter
	quotesImported prometheus.Counter
}

// NewMetrics creates the counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		syncRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "quotes_sync_runs_total",
			Help: "Number of sync runs by result.",
		}, []string{"result"}),
		syncNew: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quotes_sync_new_total",
			Help: "Number of remote quotes appended by sync.",
		}),
		syncConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quotes_sync_conflicts_total",
			Help: "Number of local quotes whose category was overwritten by sync.",
		}),
		quotesAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quotes_added_total",
			Help: "Number of quotes added manually.",
		}),
		quotesImported: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quotes_imported_total",
			Help: "Number of quotes appended by imports.",
		}),
	}

	reg.MustRegister(m.syncRuns, m.syncNew, m.syncConflicts, m.quotesAdded, m.quotesImported)

	return m
}

func (m *Metrics) observeSync(report models.SyncReport, skipped bool) {
	if m == nil {
		return
	}

	switch {
	case skipped:
		m.syncRuns.WithLabelValues(syncResultSkipped).Inc()
	case report.Failed():
		m.syncRuns.WithLabelValues(syncResultFailure).Inc()
	default:
		m.syncRuns.WithLabelValues(syncResultSuccess).Inc()
		m.syncNew.Add(float64(report.New))
		m.syncConflicts.Add(float64(report.Conflicts))
	}
}

func (m *Metrics) quoteAdded() {
	if m == nil {
		return
	}
	m.quotesAdded.Inc()
}

func (m *Metrics) quotesImportedAdd(n int) {
	if m == nil {
		return
	}
	m.quotesImported.Add(float64(n))
}
