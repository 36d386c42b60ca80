// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// Info holds all information required to number the equations of a domain
type Info struct {
	Dofs [][]string        // solution variables PER NODE. ex for 2 nodes: [["ux", "uy", "uz", "rx", "ry", "rz"], [...]]
	Y2F  map[string]string // maps "y" keys to "f" keys. ex: "ux" => "fx", "rz" => "mz"
}
