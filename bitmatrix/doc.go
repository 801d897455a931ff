// Package bitmatrix provides the word-packed 2-D bit array that every
// engine in this module is built on: predicate-subject and object-subject
// existence indexes (package triplestore), subclass/subproperty closures
// (package reasoner), class/property/shape masks (package shape), and
// result vectors (package join) are all, physically, one or more rows of
// a bitmatrix.Matrix.
//
// A logical r×c bit array is stored as a flat []uint64 in row-major
// order. Row stride is ⌈c/64⌉ words; row r, column c lives at word
// r*stride + c/64, bit c%64. The backing slice is allocated with a small
// over-allocation so its first element can be nudged onto a 64-byte
// boundary, permitting word-parallel (and, with a vectorizing compiler,
// wider) loads across a row without crossing unnecessary cache lines.
package bitmatrix
