package internal

import (
	"fmt"
	"math"
	"strconv"
)

// Runtime values are loxNumber, loxString, loxBool or nil.

type loxNumber float64

func applyOpToNumbers(op func(x, y loxNumber) interface{}, arguments ...interface{}) (interface{}, error) {
	x := arguments[0].(loxNumber)
	y, ok := arguments[1].(loxNumber)
	if !ok {
		return nil, errOnlyNumbers
	}
	return op(x, y), nil
}

var numberBinaryOperations = map[operator]func(x, y loxNumber) interface{}{
	opSub: func(x, y loxNumber) interface{} {
		return x - y
	},
	opDiv: func(x, y loxNumber) interface{} {
		return x / y
	},
	opMul: func(x, y loxNumber) interface{} {
		return x * y
	},
	opGt: func(x, y loxNumber) interface{} {
		return loxBool(x > y)
	},
	opGte: func(x, y loxNumber) interface{} {
		return loxBool(x >= y)
	},
	opLt: func(x, y loxNumber) interface{} {
		return loxBool(x < y)
	},
	opLte: func(x, y loxNumber) interface{} {
		return loxBool(x <= y)
	},
}

var numberOperations = map[operator]operatorApply{
	// Adding anything but another number yields nil instead of failing
	opAdd: func(arguments ...interface{}) (interface{}, error) {
		x := arguments[0].(loxNumber)
		y, ok := arguments[1].(loxNumber)
		if !ok {
			return nil, nil
		}
		return x + y, nil
	},
	opNeg: func(arguments ...interface{}) (interface{}, error) {
		return -arguments[0].(loxNumber), nil
	},
}

func (n loxNumber) getOperator(op operator) (operatorApply, error) {
	if apply, ok := numberOperations[op]; ok {
		return makeOperatorApplier(n, apply), nil
	}
	if apply, ok := numberBinaryOperations[op]; ok {
		return makeOperatorApplier(n, func(arguments ...interface{}) (interface{}, error) {
			return applyOpToNumbers(apply, arguments...)
		}), nil
	}
	return nil, errUndefinedOp
}

// String drops the fractional part of integral numbers
func (n loxNumber) String() string {
	f := float64(n)
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

type loxString string

var stringOperations = map[operator]operatorApply{
	opAdd: func(arguments ...interface{}) (interface{}, error) {
		x := arguments[0].(loxString)
		y, ok := arguments[1].(loxString)
		if !ok {
			return nil, nil
		}
		return x + y, nil
	},
}

func (s loxString) getOperator(op operator) (operatorApply, error) {
	if apply, ok := stringOperations[op]; ok {
		return makeOperatorApplier(s, apply), nil
	}
	return nil, errUndefinedOp
}

func (s loxString) String() string {
	return string(s)
}

// Repr quotes the string, used when printing trees
func (s loxString) Repr() string {
	return strconv.Quote(string(s))
}

type loxBool bool

func (b loxBool) String() string {
	return fmt.Sprintf("%v", bool(b))
}

// truthy returns false only for nil and false
func truthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if valueBool, isBool := value.(loxBool); isBool {
		return bool(valueBool)
	}
	return true
}

// isEqual compares values of any kind, values of different kinds are
// never equal
func isEqual(a, b interface{}) bool {
	return a == b
}

func stringify(value interface{}) string {
	if value == nil {
		return "nil"
	}
	if s, ok := value.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", value)
}
