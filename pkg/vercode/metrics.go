// Copyright (c) 2026, VPack Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vercode

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	reasonArity = "arity"
	reasonRange = "range"
)

var (
	// Code creation metrics
	codesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vpack_codes_created_total",
			Help: "Total number of version codes successfully created",
		},
	)

	createFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vpack_create_failures_total",
			Help: "Total number of version code creation failures by reason",
		},
		[]string{"reason"},
	)
)
