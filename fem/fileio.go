// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/klauspost/compress/zstd"
)

// SaveSol saves solution (o.Sol) to a file which name is set with tidx (time output index)
func (o *Domain) SaveSol(tidx int, verbose bool) (err error) {

	// buffer and encoder
	var buf bytes.Buffer
	enc := utl.NewEncoder(&buf, o.Sim.EncType)

	// encode Sol
	err = enc.Encode(o.Sol.T)
	if err != nil {
		return chk.Err("cannot encode Domain.Sol.T\n%v", err)
	}
	err = enc.Encode(o.Sol.Y)
	if err != nil {
		return chk.Err("cannot encode Domain.Sol.Y\n%v", err)
	}

	// save file
	fn := out_nod_path(o.Sim.DirOut, o.Sim.Key, o.Sim.EncType, tidx)
	return save_file(fn, &buf, verbose)
}

// ReadSol reads Solution from a file which name is set with tidx (time output index)
func (o *Domain) ReadSol(dir, fnkey, enctype string, tidx int) (err error) {

	// open file
	fn := out_nod_path(dir, fnkey, enctype, tidx)
	dec, closer, err := open_file(fn, enctype)
	if err != nil {
		return
	}
	defer closer()

	// decode Sol
	err = dec.Decode(&o.Sol.T)
	if err != nil {
		return chk.Err("cannot decode Domain.Sol.T\n%v", err)
	}
	var y []float64
	err = dec.Decode(&y)
	if err != nil {
		return chk.Err("cannot decode Domain.Sol.Y\n%v", err)
	}
	if len(y) != o.Ny {
		return chk.Err("number of equations in file (%d) is different from the one in domain (%d)", len(y), o.Ny)
	}
	copy(o.Sol.Y, y)
	return
}

// SaveIvs saves elements's internal values to a file which name is set with tidx (time output index)
func (o *Domain) SaveIvs(tidx int, verbose bool) (err error) {

	// buffer and encoder
	var buf bytes.Buffer
	enc := utl.NewEncoder(&buf, o.Sim.EncType)

	// elements that go to file
	err = enc.Encode(o.MyCids)
	if err != nil {
		return chk.Err("cannot encode elements ids:\n%v", err)
	}

	// encode internal variables
	for _, e := range o.Elems {
		err = e.Encode(enc)
		if err != nil {
			return chk.Err("cannot encode element %d:\n%v", e.Id(), err)
		}
	}

	// save file
	fn := out_ele_path(o.Sim.DirOut, o.Sim.Key, o.Sim.EncType, tidx)
	return save_file(fn, &buf, verbose)
}

// ReadIvs reads elements's internal values from a file which name is set with tidx (time output index)
func (o *Domain) ReadIvs(dir, fnkey, enctype string, tidx int) (err error) {

	// open file
	fn := out_ele_path(dir, fnkey, enctype, tidx)
	dec, closer, err := open_file(fn, enctype)
	if err != nil {
		return
	}
	defer closer()

	// elements that are in file
	var cids []int
	err = dec.Decode(&cids)
	if err != nil {
		return chk.Err("cannot decode elements ids:\n%v", err)
	}

	// decode internal variables
	for _, cid := range cids {
		if cid < 0 || cid >= len(o.Cid2elem) || o.Cid2elem[cid] == nil {
			return chk.Err("cannot find element with cid=%d", cid)
		}
		err = o.Cid2elem[cid].Decode(dec)
		if err != nil {
			return chk.Err("cannot decode element:\n%v", err)
		}
	}
	return
}

// Save saves Solution and Internal values to files
func (o *Domain) Save(tidx int, verbose bool) (err error) {
	err = o.SaveSol(tidx, verbose)
	if err != nil {
		return
	}
	return o.SaveIvs(tidx, verbose)
}

// Read performs the inverse operation of Save()
func (o *Domain) Read(sum *Summary, tidx int) (err error) {
	if tidx < 0 || tidx >= len(sum.OutTimes) {
		return chk.Err("time output index %d is out of range [0, %d)", tidx, len(sum.OutTimes))
	}
	err = o.ReadIvs(sum.Dirout, sum.Fnkey, sum.EncType, tidx)
	if err != nil {
		return
	}
	return o.ReadSol(sum.Dirout, sum.Fnkey, sum.EncType, tidx)
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func out_nod_path(dir, fnkey, enctype string, tidx int) string {
	return filepath.Join(dir, io.Sf("%s_nod_%010d.%s.zst", fnkey, tidx, enctype))
}

func out_ele_path(dir, fnkey, enctype string, tidx int) string {
	return filepath.Join(dir, io.Sf("%s_ele_%010d.%s.zst", fnkey, tidx, enctype))
}

// save_file writes the compressed contents of buf
func save_file(filename string, buf *bytes.Buffer, verbose bool) (err error) {
	fil, err := os.Create(filename)
	if err != nil {
		return
	}
	defer func() {
		if e := fil.Close(); err == nil {
			err = e
		}
	}()
	zw, err := zstd.NewWriter(fil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return chk.Err("cannot create compressor:\n%v", err)
	}
	_, err = zw.Write(buf.Bytes())
	if err != nil {
		zw.Close()
		return chk.Err("cannot write file <%s>:\n%v", filename, err)
	}
	err = zw.Close()
	if err != nil {
		return
	}
	if verbose {
		io.Pfblue2("file <%s> written\n", filename)
	}
	return
}

// open_file opens a compressed file and returns a decoder reading from it
func open_file(filename, enctype string) (dec utl.Decoder, closer func(), err error) {
	fil, err := os.Open(filename)
	if err != nil {
		return
	}
	zr, err := zstd.NewReader(fil)
	if err != nil {
		fil.Close()
		return nil, nil, chk.Err("cannot create decompressor for <%s>:\n%v", filename, err)
	}
	closer = func() {
		zr.Close()
		fil.Close()
	}
	return utl.NewDecoder(zr, enctype), closer, nil
}
