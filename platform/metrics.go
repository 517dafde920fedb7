// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

package platform

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var probeTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "a0_platform_probe_total",
		Help: "Capability probe evaluations by probe and outcome.",
	},
	[]string{"probe", "result"},
)

func recordProbe(name string, ok bool) {
	result := "unavailable"
	if ok {
		result = "available"
	}
	probeTotal.WithLabelValues(name, result).Inc()
}
