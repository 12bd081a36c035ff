/*
PURPOSE:
  Defines the Solution value produced by every solver row.
  A Solution is display-only: it is turned into a string for the results
  table and then discarded.

REQUIREMENTS:
  User-specified:
  - Unsigned and signed integers of 8/16/32/64/128 bits and platform width.
  - Free text answers.
  - Two solutions are equal when they print the same.

  Implementation-discovered:
  - Go has no native 128-bit integers, so U128/I128 carry two 64-bit halves
    and print through math/big.

ARCHITECTURE INTEGRATION:
  - Produced by: solver implementations (internal/solvers, callers)
  - Consumed by: table.Run

ERROR HANDLING:
  - None (total functions).

IMPLEMENTATION RULES:
  - The interface is sealed; add a variant by adding a type with isSolution().
  - Never compare solutions numerically, use Equal.

USAGE:
  res := solver.Measure(func() solver.Solution { return solver.U64(fib(90)) })

SELF-HEALING INSTRUCTIONS:
  - If a new numeric width is needed, add a named type with String() and
    isSolution(), then extend solution_test.go.

RELATED FILES:
  - solver/solver.go
  - table/runner.go

MAINTENANCE:
  - Update when the table must display a new kind of answer.
*/

package solver

import (
	"math/big"
	"strconv"
)

// Solution is the computed answer of a single solver row.
type Solution interface {
	String() string
	isSolution()
}

type (
	U8   uint8
	U16  uint16
	U32  uint32
	U64  uint64
	Uint uint
	I8   int8
	I16  int16
	I32  int32
	I64  int64
	Int  int
	Text string
)

// U128 is an unsigned 128-bit integer split into high and low words.
type U128 struct {
	Hi, Lo uint64
}

// I128 is a signed 128-bit integer in two's complement. Hi carries the sign.
type I128 struct {
	Hi int64
	Lo uint64
}

// U128From widens v to 128 bits.
func U128From(v uint64) U128 { return U128{Lo: v} }

// I128From sign-extends v to 128 bits.
func I128From(v int64) I128 { return I128{Hi: v >> 63, Lo: uint64(v)} }

func (s U8) String() string   { return strconv.FormatUint(uint64(s), 10) }
func (s U16) String() string  { return strconv.FormatUint(uint64(s), 10) }
func (s U32) String() string  { return strconv.FormatUint(uint64(s), 10) }
func (s U64) String() string  { return strconv.FormatUint(uint64(s), 10) }
func (s Uint) String() string { return strconv.FormatUint(uint64(s), 10) }
func (s I8) String() string   { return strconv.FormatInt(int64(s), 10) }
func (s I16) String() string  { return strconv.FormatInt(int64(s), 10) }
func (s I32) String() string  { return strconv.FormatInt(int64(s), 10) }
func (s I64) String() string  { return strconv.FormatInt(int64(s), 10) }
func (s Int) String() string  { return strconv.FormatInt(int64(s), 10) }
func (s Text) String() string { return string(s) }

func (s U128) String() string {
	if s.Hi == 0 {
		return strconv.FormatUint(s.Lo, 10)
	}
	v := new(big.Int).SetUint64(s.Hi)
	v.Lsh(v, 64)
	return v.Add(v, new(big.Int).SetUint64(s.Lo)).String()
}

func (s I128) String() string {
	// Hi*2^64 + Lo holds for two's complement when Hi is read as signed.
	v := big.NewInt(s.Hi)
	v.Lsh(v, 64)
	return v.Add(v, new(big.Int).SetUint64(s.Lo)).String()
}

func (U8) isSolution()   {}
func (U16) isSolution()  {}
func (U32) isSolution()  {}
func (U64) isSolution()  {}
func (U128) isSolution() {}
func (Uint) isSolution() {}
func (I8) isSolution()   {}
func (I16) isSolution()  {}
func (I32) isSolution()  {}
func (I64) isSolution()  {}
func (I128) isSolution() {}
func (Int) isSolution()  {}
func (Text) isSolution() {}

// Display returns the table text for s. A nil solution displays as "".
func Display(s Solution) string {
	if s == nil {
		return ""
	}
	return s.String()
}

// Equal reports whether a and b print identically. U8(7), I64(7) and
// Text("7") are all equal; Text("07") and U8(7) are not.
func Equal(a, b Solution) bool {
	return Display(a) == Display(b)
}
