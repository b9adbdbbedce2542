package shape

// Op decides whether a cell of a combined shape is full, given whether it is full in the first and the
// second shape. Ops must return false if the cell is full in neither.
type Op func(a, b bool) bool

var (
	// OpAnd keeps the cells full in both shapes.
	OpAnd Op = func(a, b bool) bool { return a && b }
	// OpOr keeps the cells full in either shape.
	OpOr Op = func(a, b bool) bool { return a || b }
	// OpXor keeps the cells full in exactly one shape.
	OpXor Op = func(a, b bool) bool { return a != b }
	// OpDifference keeps the cells of the first shape not covered by the second.
	OpDifference Op = func(a, b bool) bool { return a && !b }
	// OpOnlySecond keeps the cells of the second shape not covered by the first.
	OpOnlySecond Op = func(a, b bool) bool { return !a && b }
	// OpFirst keeps the first shape and ignores the second.
	OpFirst Op = func(a, _ bool) bool { return a }
	// OpSecond keeps the second shape and ignores the first.
	OpSecond Op = func(_, b bool) bool { return b }
)
