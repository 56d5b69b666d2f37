// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package perivoronoi generates periodic Voronoi tessellations of a
// rectangular domain, suitable as finite-element discretizations.
//
// The pipeline samples a blue-noise site set inside [0,Lx] x [0,Ly], detects
// the sites whose Voronoi cell touches the domain boundary, surrounds them
// with their eight periodic images, recomputes the Voronoi diagram of the
// enlarged set, clips the result back to the domain rectangle, and collapses
// geometrically insignificant edges. The surviving nodes and edges form a
// planar straight-line mesh in which boundary cells tile consistently across
// the opposite edges of the rectangle.
package perivoronoi
