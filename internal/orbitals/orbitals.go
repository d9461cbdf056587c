// Package orbitals evaluates hydrogen-like orbital wavefunctions and turns
// them into point clouds by rejection sampling a cube around the nucleus.
//
// Builders (NewLegendre, NewLaguerre, NewSphericalHarmonic, NewWaveFunction)
// do all coefficient work once; the returned values are immutable and safe to
// share between sampling workers.
package orbitals

type Real = float64
