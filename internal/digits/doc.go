// Package digits implements multiple-precision integer arithmetic on vectors
// of fixed-width 32-bit digits. It provides the two multiplication primitives
// the rest of the application is built on: a column-wise (Comba) multiplier
// that can produce a bounded number of output digits, and a Toom-Cook 3-way
// squaring algorithm for large operands.
//
// All operations use the math/big receiver convention: the receiver is the
// destination and may alias any operand. Unlike math/big, operations return an
// error, because digit-vector growth is bounded (see maxDigits) and growth
// failure must propagate to the caller instead of panicking.
package digits
