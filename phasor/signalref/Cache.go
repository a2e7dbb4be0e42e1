//******************************************************************************************************
//  Cache.go - Gbtc
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
//  07/30/2026 - generated original version of source code, adapted from the reference/reverse-lookup
//       bookkeeping of transport.SignalIndexCache.
//
//******************************************************************************************************

package signalref

import (
	"sync"

	"github.com/gpascada/phasoradapter/phasor/signalkind"
)

// indexedSlot is the tagged-variant "Indexed" arm: a fixed-length array of lazily synthesized
// signal references for one indexed SignalKind (Analog, Digital, Angle, Magnitude). The whole
// slot is discarded and replaced whenever the device's signal count for that kind changes.
type indexedSlot struct {
	count  int
	values []*string
}

// Cache memoizes generated signal-reference strings per (kind, index, count) so that the mapper's
// hot path never re-formats a string once a slot has been synthesized. Scalar kinds get a single
// cached string; indexed kinds get a count-keyed array, per the Design Notes' tagged-variant
// "Signal-reference cache polymorphism" guidance.
type Cache struct {
	adapterName string

	mu      sync.Mutex
	scalars map[signalkind.Enum]string
	indexed map[signalkind.Enum]*indexedSlot
}

// New creates a Cache for the given adapter name. Signal references embed this name verbatim, so
// a Cache is only valid for the adapter it was constructed for.
func New(adapterName string) *Cache {
	return &Cache{
		adapterName: adapterName,
		scalars:     make(map[signalkind.Enum]string),
		indexed:     make(map[signalkind.Enum]*indexedSlot),
	}
}

// Get returns the cached signal reference for a scalar SignalKind, synthesizing it on first
// access.
func (c *Cache) Get(kind signalkind.Enum) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if reference, ok := c.scalars[kind]; ok {
		return reference
	}

	reference := Encode(c.adapterName, kind)
	c.scalars[kind] = reference

	return reference
}

// GetIndexed returns the cached signal reference for an indexed SignalKind at the given 0-based
// index out of count total signals of that kind. If a cached array already exists for kind with a
// different count, it is discarded and replaced in full — per invariant 4, a count mismatch
// invalidates the whole array, not just the requested slot.
func (c *Cache) GetIndexed(kind signalkind.Enum, index, count int) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	slot, ok := c.indexed[kind]

	if !ok || slot.count != count {
		slot = &indexedSlot{count: count, values: make([]*string, count)}
		c.indexed[kind] = slot
	}

	if slot.values[index] == nil {
		reference := EncodeIndexed(c.adapterName, kind, index)
		slot.values[index] = &reference
	}

	return *slot.values[index]
}
