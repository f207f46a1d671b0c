package main

import (
	"flag"
	"math/big"
)

// flagSet wraps flag.FlagSet to add support for big.Int-valued flags,
// since Go's standard flag package has no native arbitrary-precision
// integer type and the tower's scalar arguments routinely exceed 64 bits.
type flagSet struct {
	*flag.FlagSet
}

// newCustomFlagSet creates a flagSet with ContinueOnError behavior.
func newCustomFlagSet(name string) *flagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	return &flagSet{FlagSet: fs}
}

// BigIntVar defines a decimal big.Int flag.
func (fs *flagSet) BigIntVar(p **big.Int, name string, value *big.Int, usage string) {
	*p = value
	fs.FlagSet.Var(&bigIntValue{p: p}, name, usage)
}

// bigIntValue implements flag.Value for arbitrary-precision integer flags.
type bigIntValue struct {
	p **big.Int
}

func (v *bigIntValue) String() string {
	if v.p == nil || *v.p == nil {
		return "0"
	}
	return (*v.p).String()
}

func (v *bigIntValue) Set(s string) error {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return errInvalidBigInt(s)
	}
	*v.p = n
	return nil
}

type errInvalidBigInt string

func (e errInvalidBigInt) Error() string { return "invalid decimal integer " + string(e) }
