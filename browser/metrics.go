// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

package browser

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	installAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "a0_browser_install_attempts_total",
			Help: "Browser install attempts by package and result.",
		},
		[]string{"package", "result"},
	)

	resolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "a0_browser_resolutions_total",
			Help: "Successful browser binary resolutions by source.",
		},
		[]string{"source"},
	)
)

func recordInstall(pkg string, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	installAttempts.WithLabelValues(pkg, result).Inc()
}

func recordResolution(source Source) {
	resolutions.WithLabelValues(string(source)).Inc()
}
