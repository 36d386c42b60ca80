// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Summary records summary of outputs
type Summary struct {
	OutTimes []float64 `json:"outtimes"` // [nOutTimes] output times
	Dirout   string    `json:"dirout"`   // directory where results are stored
	Fnkey    string    `json:"fnkey"`    // filename key of simulation
	EncType  string    `json:"enctype"`  // encoder used in results files
}

// SaveDomain saves the results of domain at current time and records the output time
func (o *Summary) SaveDomain(dom *Domain, verbose bool) (err error) {
	tidx := len(o.OutTimes)
	err = dom.Save(tidx, verbose)
	if err != nil {
		return
	}
	o.OutTimes = append(o.OutTimes, dom.Sol.T)
	return
}

// Save saves summary to disc
func (o *Summary) Save() (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return chk.Err("cannot encode summary:\n%v", err)
	}
	return os.WriteFile(out_sum_path(o.Dirout, o.Fnkey), b, 0644)
}

// ReadSum reads summary back
func ReadSum(dir, fnkey string) (o *Summary, err error) {
	b, err := os.ReadFile(out_sum_path(dir, fnkey))
	if err != nil {
		return nil, chk.Err("cannot read summary:\n%v", err)
	}
	o = new(Summary)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot decode summary:\n%v", err)
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func out_sum_path(dir, fnkey string) string {
	return filepath.Join(dir, io.Sf("%s_sum.json", fnkey))
}
