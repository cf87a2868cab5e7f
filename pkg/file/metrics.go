// Copyright 2023 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package file

import "github.com/prometheus/client_golang/prometheus"

const namespace = "bmtfile"

type metrics struct {
	ChunksBuilt      prometheus.Counter
	ProofsCollected  prometheus.Counter
	CarrierChunks    prometheus.Counter
	ProofVerifyError prometheus.Counter
}

func newMetrics() metrics {
	subsystem := "file"

	return metrics{
		ChunksBuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "chunks_built",
			Help:      "Total leaf and intermediate chunks created while building a tree.",
		}),
		ProofsCollected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "proofs_collected",
			Help:      "Total inclusion proofs collected.",
		}),
		CarrierChunks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "carrier_chunks",
			Help:      "Total times a lone right-edge chunk was carried forward to the next level.",
		}),
		ProofVerifyError: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "proof_verify_error",
			Help:      "Total inclusion proof verification failures.",
		}),
	}
}

// defaultMetrics is shared by every ChunkedFile so that callers can register
// it once with a prometheus.Registerer and observe totals across the whole
// process, the same way bee's per-protocol metrics structs are registered
// once at service construction rather than per request.
var defaultMetrics = newMetrics()

// Metrics returns the collectors for this package so they can be registered
// with a prometheus.Registerer. It deliberately does not expose an HTTP
// endpoint: exporting metrics over the network is left to the caller.
func Metrics() []prometheus.Collector {
	return []prometheus.Collector{
		defaultMetrics.ChunksBuilt,
		defaultMetrics.ProofsCollected,
		defaultMetrics.CarrierChunks,
		defaultMetrics.ProofVerifyError,
	}
}
