// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattice

import (
	"sort"
	"sync"
)

// PointId identifies an integration point: element id and local index
type PointId struct {
	Eid  int // id of the element (cell) that owns the point
	Ipid int // index of the point within the element
}

// Point holds an integration point of a lattice element
//  Note: the status is attached on first access by the material
type Point struct {
	Id     PointId // identifier
	Sec    Section // geometric properties of the owner element
	status *Status // attached status; nil until requested
}

// NewPoint returns a new point not yet attached to any status
func NewPoint(eid, ipid int, sec Section) *Point {
	return &Point{Id: PointId{eid, ipid}, Sec: sec}
}

// HasStatus tells whether a status has been attached to this point
func (o *Point) HasStatus() bool {
	return o.status != nil
}

// getOrCreateStatus returns the attached status; allocates and attaches one if absent
//  Note: each point belongs to one element; elements update their points sequentially
func (o *Point) getOrCreateStatus() *Status {
	if o.status == nil {
		o.status = NewStatus()
	}
	return o.status
}

// PointSet holds all integration points of a domain, indexed by PointId
//  Note: GetOrCreate may be called concurrently by elements being set up in parallel
type PointSet struct {
	mu  sync.Mutex
	pts map[PointId]*Point
}

// NewPointSet returns a new empty set
func NewPointSet() *PointSet {
	return &PointSet{pts: make(map[PointId]*Point)}
}

// GetOrCreate returns the point with given id; it is created (with sec) if absent
func (o *PointSet) GetOrCreate(eid, ipid int, sec Section) *Point {
	o.mu.Lock()
	defer o.mu.Unlock()
	id := PointId{eid, ipid}
	if pt, ok := o.pts[id]; ok {
		return pt
	}
	pt := NewPoint(eid, ipid, sec)
	o.pts[id] = pt
	return pt
}

// Get returns a point or nil if not found
func (o *PointSet) Get(eid, ipid int) *Point {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.pts[PointId{eid, ipid}]
}

// Len returns the number of points
func (o *PointSet) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.pts)
}

// Ids returns all ids sorted by element and then point index
func (o *PointSet) Ids() (ids []PointId) {
	o.mu.Lock()
	ids = make([]PointId, 0, len(o.pts))
	for id := range o.pts {
		ids = append(ids, id)
	}
	o.mu.Unlock()
	sort.Slice(ids, func(i, j int) bool {
		if ids[i].Eid == ids[j].Eid {
			return ids[i].Ipid < ids[j].Ipid
		}
		return ids[i].Eid < ids[j].Eid
	})
	return
}
