package internal

type operator string

const (
	opAdd operator = "add"
	opSub operator = "sub"
	opDiv operator = "div"
	opMul operator = "mul"
	opNeg operator = "neg"
	opLt  operator = "lt"
	opLte operator = "lte"
	opGt  operator = "gt"
	opGte operator = "gte"
)

type operatorApply func(arguments ...interface{}) (interface{}, error)

// operable is implemented by values that support arithmetic or
// comparison operators
type operable interface {
	getOperator(op operator) (operatorApply, error)
}

var binaryOperators = map[tokenType]operator{
	tkPlus:         opAdd,
	tkMinus:        opSub,
	tkSlash:        opDiv,
	tkStar:         opMul,
	tkLess:         opLt,
	tkLessEqual:    opLte,
	tkGreater:      opGt,
	tkGreaterEqual: opGte,
}

func makeOperatorApplier(self interface{}, apply operatorApply) operatorApply {
	return func(arguments ...interface{}) (interface{}, error) {
		return apply(append([]interface{}{self}, arguments...)...)
	}
}
