// Copyright (c) 2026, Sciviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graph implements an animated 2D line and point chart
// widget. A [Graph] mounts into a container group inside an
// [svg.SVG] document, owns one scaled coordinate system with
// rendered axes, and exposes operations to add, update, and remove
// visual marks bound to numeric data.
//
// Marks are tracked by stable key, not array position: operations
// that replace a whole dataset ([Graph.MarkerLines],
// [Graph.MarkerPoints]) reconcile the new data against the live
// marks and animate exactly the entries that entered, moved, or
// left. Transitions are advanced by [Graph.Step] (or [Graph.Play]
// for a real-time loop) and the current visual state is serialized
// with the document's WriteXML.
package graph
