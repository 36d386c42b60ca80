// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// IpsMap holds values at the integration points of one element, by key
//  e.g. lattice frames output the generalised stresses "N", "V2", "V1", "M2", "M1" and "T0"
//  at their single mid-length point
type IpsMap map[string][]float64

// NewIpsMap returns a new IpsMap
func NewIpsMap() *IpsMap {
	M := make(IpsMap)
	return &M
}

// Set sets the value of key at point idx; a slice with nip entries is allocated for new keys
func (o *IpsMap) Set(key string, idx, nip int, val float64) {
	if slice, ok := (*o)[key]; ok {
		slice[idx] = val
		return
	}
	slice := make([]float64, nip)
	slice[idx] = val
	(*o)[key] = slice
}

// Get returns the value of key at point idx
//  Note: returns 0 if key is not found; idx is not checked
func (o *IpsMap) Get(key string, idx int) float64 {
	if slice, ok := (*o)[key]; ok {
		return slice[idx]
	}
	return 0
}

// Lookup returns the value of key at point idx and whether it exists
func (o *IpsMap) Lookup(key string, idx int) (val float64, found bool) {
	slice, ok := (*o)[key]
	if !ok || idx < 0 || idx >= len(slice) {
		return 0, false
	}
	return slice[idx], true
}
