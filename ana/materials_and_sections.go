// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements reference data for lattice frames: cross-sections and materials
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// CrossSection computes cross-sectional moments of inertia and other properties
//
//                        ,o--------o    ,y0 = x (along the element)
//                      ,' :     ,' |  ,'
//        y1 = y      ,'       ,'   |,'
//         ^        ,'     : ,'    ,|
//         |      ,'       ,'    ,  |
//         |    ,'       ,'    ,    |
//         |  ,'       ,'  : ,      |
//         |,'       ,'    +  - - - o
//         o--------o    ,        ,'
//         |        |  ,        ,'
//         |        |,        ,'
//         |       ,|       ,'         I22 = Iz ~ Imax
//         |     ,  |     ,'           I11 = Iy ~ Imin
//         |   ,    |   ,'             Jtt = Ik
//         | ,      | ,'
//         o--------o' --------> y2 = z
//
//   typ : rectangle
//         circle                             tw
//         I-beam                         -->| |<--
//                                    ___    | |     ___
//   ^ 1       +-------+            tf |   ########   |
//   |         |       |              ---  ########   |
//   |         |       |                      ##      |
//   +----> 2  |       | h = hei              ##      | h = hei
//             |       |                      ##      |
//             |       |              ---  ########   |
//             +-------+            tf_|_  ########  ---
//              b = wid                    b = wid
//
type CrossSection struct {

	// input
	Type string  // "rectangle", "I-beam" or "circle"
	Unit string  // unit of length
	Wid  float64 // width (b) if not circular
	Hei  float64 // height (h) if not circular
	Tf   float64 // flange thickness if I-beam
	Tw   float64 // web thickness if I-beam
	R    float64 // radius if circular

	// derived
	A   float64 // cross-sectional area
	I22 float64 // major cross-section moment of inertia (about y2-axis)
	I11 float64 // minor cross-section moment of inertia (about y1-axis)
	Jtt float64 // torsional constant
	As1 float64 // effective shear area for shear along y1
	As2 float64 // effective shear area for shear along y2
}

// Init initialises structure and computes moment of inertia
func (o *CrossSection) Init(typ, unitLen string, wid, hei, tf, tw, rad float64) (err error) {

	// input data
	o.Type, o.Unit, o.Wid, o.Hei, o.Tf, o.Tw, o.R = typ, unitLen, wid, hei, tf, tw, rad

	// derived
	switch typ {
	case "rectangle":
		if wid <= 0 || hei <= 0 {
			return chk.Err("rectangle: width and height must be positive. wid=%g, hei=%g are invalid", wid, hei)
		}
		b, h := wid, hei
		b3 := b * b * b
		h3 := h * h * h
		o.A = b * h
		o.I22 = b * h3 / 12.0
		o.I11 = b3 * h / 12.0
		if b == h {
			o.Jtt = 9.0 * b3 * b / 64.0
		} else {
			if b > h {
				b, h = h, b
				b3 = b * b * b
				h3 = h * h * h
			}
			o.Jtt = h * b3 * (1.0/3.0 - 0.21*(b/h)*(1.0-b*b3/(12.0*h*h3))) // approximate
		}
		o.As1 = 5.0 * o.A / 6.0
		o.As2 = o.As1

	case "I-beam":
		if wid <= 0 || hei <= 0 || tf <= 0 || tw <= 0 || 2.0*tf >= hei || tw >= wid {
			return chk.Err("I-beam: dimensions are invalid. wid=%g, hei=%g, tf=%g, tw=%g", wid, hei, tf, tw)
		}
		b, h := wid, hei
		b3 := b * b * b
		h3 := h * h * h
		tf3 := tf * tf * tf
		tw3 := tw * tw * tw
		l := h - 2.0*tf
		l3 := l * l * l
		o.A = b*h - l*(b-tw)
		o.I22 = b*h3/12.0 - (b-tw)*l3/12.0
		o.I11 = l*tw3/12.0 + tf*b3/6.0
		o.Jtt = (2.0*b*tf3 + (h-2.0*tf)*tw3) / 3.0
		o.As1 = h * tw                     // web
		o.As2 = 5.0 * (2.0 * b * tf) / 6.0 // flanges

	case "circle":
		if rad <= 0 {
			return chk.Err("circle: radius must be positive. r=%g is invalid", rad)
		}
		r2 := rad * rad
		o.A = math.Pi * r2
		o.I22 = math.Pi * r2 * r2 / 4.0
		o.I11 = o.I22
		o.Jtt = o.I22 + o.I11
		o.As1 = 0.9 * o.A
		o.As2 = o.As1

	default:
		return chk.Err("cross-section type %q is unavailable", typ)
	}
	return
}

// Area returns the cross-sectional area
func (o *CrossSection) Area() float64 { return o.A }

// Iy returns the moment of inertia about the local y (= y1) axis
func (o *CrossSection) Iy() float64 { return o.I11 }

// Iz returns the moment of inertia about the local z (= y2) axis
func (o *CrossSection) Iz() float64 { return o.I22 }

// Ik returns the torsional constant
func (o *CrossSection) Ik() float64 { return o.Jtt }

// ShearAreaY returns the effective shear area along local y
func (o *CrossSection) ShearAreaY() float64 { return o.As1 }

// ShearAreaZ returns the effective shear area along local z
func (o *CrossSection) ShearAreaZ() float64 { return o.As2 }

// GetSecString returns string representation of cross-section for .mat file
func (o *CrossSection) GetSecString(name, numfmt string) string {
	l := io.Sf("    {\n      \"name\" : %q,\n      \"type\" : %q,\n      \"unit\" : %q,\n", name, o.Type, o.Unit)
	switch o.Type {
	case "circle":
		l += io.Sf("      \"r\"    : "+numfmt+"\n    }", o.R)
	case "I-beam":
		l += io.Sf("      \"wid\"  : "+numfmt+",\n      \"hei\"  : "+numfmt+",\n", o.Wid, o.Hei)
		l += io.Sf("      \"tf\"   : "+numfmt+",\n      \"tw\"   : "+numfmt+"\n    }", o.Tf, o.Tw)
	default:
		l += io.Sf("      \"wid\"  : "+numfmt+",\n      \"hei\"  : "+numfmt+"\n    }", o.Wid, o.Hei)
	}
	return l
}

// Material holds parameters of some reference materials
type Material struct {

	// input
	Type     string // type of material; e.g. "steel"
	UnitPres string // unit of pressure

	// derived
	UnitDens string  // unit of density
	Desc     string  // description
	E        float64 // Young's modulus
	Nu       float64 // Poisson's coefficient
	G        float64 // shear modulus
	Alpha    float64 // thermal expansion coefficient [1/°C]
	Rho      float64 // density
}

// Init initialises material paramters
//  Input:
//   unitPres:  "kPa" => E:[kPa], rho:[Mg/m^3]
//  		    "MPa" => E:[MPa], rho:[Gg/m^3]
//  		    "GPa" => E:[GPa], rho:[Tg/m^3]
func (o *Material) Init(typ, unitPres string) (err error) {

	// material data
	switch typ {
	case "steel":
		o.Desc = "Steel: structural A36"
		o.E = 200000.0    // [MPa]
		o.Nu = 0.32       // [-]
		o.Alpha = 1.17e-5 // [1/°C]
		o.Rho = 7.85e-3   // [Gg/m³]
	case "aluminum":
		o.Desc = "Aluminum: 2014-T6"
		o.E = 73100.0    // [MPa]
		o.Nu = 0.35      // [-]
		o.Alpha = 2.3e-5 // [1/°C]
		o.Rho = 2.79e-3  // [Gg/m³]
	case "concrete-low":
		o.Desc = "Concrete: low strength"
		o.E = 22100.0    // [MPa]
		o.Nu = 0.15      // [-]
		o.Alpha = 1.0e-5 // [1/°C]
		o.Rho = 2.38e-3  // [Gg/m³]
	case "concrete-high":
		o.Desc = "Concrete: high strength"
		o.E = 30000.0    // [MPa]
		o.Nu = 0.15      // [-]
		o.Alpha = 1.0e-5 // [1/°C]
		o.Rho = 2.38e-3  // [Gg/m³]
	case "wood-douglas-fir":
		o.Desc = "Wood: Douglas-fir"
		o.E = 13100.0    // [MPa]
		o.Nu = 0.29      // [-]
		o.Alpha = 3.6e-6 // [1/°C]
		o.Rho = 4.70e-4  // [Gg/m³]
	default:
		return chk.Err("material type %q is unavailable", typ)
	}

	// set unit
	o.UnitPres = unitPres
	MPa_to_unitPres := 1.0   // convert from MPa to unitPress (e.g. kPa)
	GgByM3_toUnitDens := 1.0 // convert from Gg/m3 to unitPress (e.g. Mg/m³)
	switch unitPres {
	case "kPa":
		o.UnitDens = "Mg/m³"
		MPa_to_unitPres = 1e3   // convert from MPa to kPa
		GgByM3_toUnitDens = 1e3 // convert from Gg/m3 to Mg/m³
	case "MPa":
		o.UnitDens = "Gg/m³"
	case "GPa":
		o.UnitDens = "Tg/m³"
		MPa_to_unitPres = 1e-3   // convert from MPa to GPa
		GgByM3_toUnitDens = 1e-3 // convert from Gg/m3 to Tg/m³
	default:
		return chk.Err("unit of pressure %q is invalid", unitPres)
	}

	// convert values to requested units
	o.E = o.E * MPa_to_unitPres
	o.Rho = o.Rho * GgByM3_toUnitDens

	// derived quantity
	o.G = o.E / (2.0 * (1.0 + o.Nu))
	return
}

// GetMatString returns string representation of material for .mat file
func (o *Material) GetMatString(name, numfmt string) string {
	l := io.Sf("    {\n      \"name\" : %q,\n", name)
	l += io.Sf("      \"type\" : \"lattice\",\n")
	l += io.Sf("      \"model\" : \"lattice-frame-elast\",\n")
	l += "      \"prms\" : [\n"
	l += io.Sf("        {\"n\":\"e\",      \"v\":"+numfmt+", \"u\":%q},\n", o.E, o.UnitPres)
	l += io.Sf("        {\"n\":\"nu\",     \"v\":"+numfmt+", \"u\":%q},\n", o.Nu, "-")
	l += io.Sf("        {\"n\":\"talpha\", \"v\":"+numfmt+", \"u\":%q},\n", o.Alpha, "1/°C")
	l += io.Sf("        {\"n\":\"rho\",    \"v\":"+numfmt+", \"u\":%q}", o.Rho, o.UnitDens)
	l += io.Sf("\n      ]\n    }")
	return l
}
