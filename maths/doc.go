// Package maths provides numerical routines that the standard math package
// does not: rounding to decimal places and significant figures, approximate
// integration and differentiation, brute-force extrema scanning, linear
// mapping and interpolation, rejection sampling, and integer factorisation
// with the fraction helpers built on it.
//
// Everything here is plain synchronous floating-point computation. Results
// that are mathematically undefined for a given input are reported through a
// false ok return; inputs that are outright misuse (reversed interval bounds,
// equal interpolation locations) panic.
package maths
