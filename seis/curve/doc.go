// Package curve provides the log-curve container shared by the synthetic
// seismogram pipeline.
//
// A [Curve] is a named, real-valued sequence over a strictly increasing
// index axis, tagged with a unit and a domain (depth or time). A [Store]
// owns the curves of one well; within a domain all curves share one axis.
//
// Stores and curves are value containers: the numerical stages receive
// curves by reference, never mutate them, and return new independently
// owned curves.
package curve
