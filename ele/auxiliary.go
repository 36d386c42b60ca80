// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/latfem/latfem/inp"

// BuildCoordsMatrix returns the coordinate matrix of a particular Cell [3][nverts]
func BuildCoordsMatrix(cell *inp.Cell, msh *inp.Mesh) (x [][]float64) {
	x = make([][]float64, 3)
	for i := 0; i < 3; i++ {
		x[i] = make([]float64, len(cell.Verts))
		for j, v := range cell.Verts {
			x[i][j] = msh.Verts[v].C[i]
		}
	}
	return
}
