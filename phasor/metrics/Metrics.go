//******************************************************************************************************
//  Metrics.go - Gbtc
//
//  Copyright © 2021, Grid Protection Alliance.  All Rights Reserved.
//
//  Licensed to the Grid Protection Alliance (GPA) under one or more contributor license agreements. See
//  the NOTICE file distributed with this work for additional information regarding copyright ownership.
//  The GPA licenses this file to you under the MIT License (MIT), the "License"; you may not use this
//  file except in compliance with the License. You may obtain a copy of the License at:
//
//      http://opensource.org/licenses/MIT
//
//  Unless agreed to in writing, the subject software distributed under the License is distributed on an
//  "AS-IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. Refer to the
//  License for the specific language governing permissions and limitations.
//
//  Code Modification History:
//  ----------------------------------------------------------------------------------------------------
//  07/31/2026 - generated original version of source code, grounded on sttp.Metrics's
//       package-init Prometheus registration pattern.
//
//******************************************************************************************************

// Package metrics registers the adapter's Prometheus instrumentation at package init, the same
// way the teacher's root package registers its metadata-refresh metrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	FramesProcessed      prometheus.Counter
	MeasurementsEmitted  prometheus.Counter
	Reconnects           prometheus.Counter
	OutOfOrderFrames     prometheus.Counter
	UndefinedDeviceHits  prometheus.Counter
	CacheHits            prometheus.Counter
	CacheMisses          prometheus.Counter

	FrameLatencyMilliseconds prometheus.Histogram
)

func init() {
	FramesProcessed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "phasoradapter",
		Subsystem: "mapper",
		Name:      "frames_processed_total",
		Help:      "The number of data frames processed since program start",
	})

	MeasurementsEmitted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "phasoradapter",
		Subsystem: "mapper",
		Name:      "measurements_emitted_total",
		Help:      "The number of mapped measurements emitted to the sink since program start",
	})

	Reconnects = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "phasoradapter",
		Subsystem: "mapper",
		Name:      "reconnects_total",
		Help:      "The number of connect-cycle restarts since program start",
	})

	OutOfOrderFrames = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "phasoradapter",
		Subsystem: "mapper",
		Name:      "out_of_order_frames_total",
		Help:      "The number of frames received with a timestamp older than the last accepted frame",
	})

	UndefinedDeviceHits = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "phasoradapter",
		Subsystem: "mapper",
		Name:      "undefined_device_hits_total",
		Help:      "The number of device cells observed that do not resolve against the device table",
	})

	CacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "phasoradapter",
		Subsystem: "cacheconfig",
		Name:      "cache_hits_total",
		Help:      "The number of successful configuration cache loads",
	})

	CacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "phasoradapter",
		Subsystem: "cacheconfig",
		Name:      "cache_misses_total",
		Help:      "The number of configuration cache loads that found no cached file",
	})

	FrameLatencyMilliseconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "phasoradapter",
		Subsystem: "mapper",
		Name:      "frame_latency_milliseconds",
		Help:      "The delay between a frame's timestamp and when it was received, in milliseconds",
		Buckets:   prometheus.ExponentialBuckets(1, 2.0, 12), // 1ms .. ~2s
	})

	prometheus.MustRegister(
		FramesProcessed,
		MeasurementsEmitted,
		Reconnects,
		OutOfOrderFrames,
		UndefinedDeviceHits,
		CacheHits,
		CacheMisses,
		FrameLatencyMilliseconds,
	)
}
