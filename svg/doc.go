// Copyright (c) 2026, Sciviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svg provides a small retained-mode SVG element tree,
// serializable to standard SVG XML. It covers the subset of SVG
// needed for chart rendering: groups, paths, lines, circles, and
// text, with the common presentation attributes on every node.
// Elements are mutated in place and the whole document is written
// out on demand, so animated attributes just need to be updated
// between writes.
package svg
