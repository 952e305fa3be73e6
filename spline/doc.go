/*
Package spline implements the 4-point curve primitive vines are made of.

A spline is a cubic Bézier segment given by four control points plus a
linear width taper and a visible parameter range [StartT, EndT]. It is not a
general curve library: splines are synthesized from a start point, a heading
and a length, either as a straight line or as a circular arc approximation,
and interpolation is left to whoever renders them.

Arcs

A quarter circle of radius r is approximated by a cubic Bézier whose inner
control points sit at distance

	r · 4(√2−1)/3  ≈  r · 0.55228475

from the end points, along the tangents. SetArc works on the chord length of
a 90° arc instead of its radius, which turns the factor into

	2(√2−1)/3  ≈  0.27614237

This is ArcConstant. Callers scale it by the arm length of a growth step and
pass it as the normal offset:

	n := spline.ArcConstant * length
	s.SetArc(start, dir, length, normal, n, length-n, false)

The arc leaves start heading dir+normal and arrives at start+dir·length
heading dir−normal. With dir and normal two octilinear directions 90° apart,
this is a turn by 90°. A flat end keeps the arrival heading at dir, i.e. a
turn by 45°.

Visible Ranges

Renderers draw the parameter range [StartT, EndT] only. Growth elements
consist of several splines which share the element's time window; Visible
maps an element's window onto the span a single spline occupies within its
element:

	(0,0) .. controls (0.2761,0.2761) and (0.7239,0.2761) .. (1,0) [0.25,1]

is the notation used by AsString for such a spline: an arc of length 1
heading east, bowing north, with its first quarter not yet visible.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package spline
