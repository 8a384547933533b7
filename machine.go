package rpn

// Machine holds the operator and value stacks used for conversion and
// evaluation. Reusing a Machine across calls avoids allocating stacks for
// each expression. A Machine is not safe for concurrent use; the zero value
// is ready to use.
type Machine struct {
	ops  []stackop
	vals []float64
	// buf is scratch space for the postfix form in Eval.
	buf []byte
}

// NewMachine creates a Machine with stacks preallocated for expressions
// nesting about depth operators deep.
func NewMachine(depth int) *Machine {
	if depth < 0 {
		depth = 0
	}
	return &Machine{
		ops:  make([]stackop, 0, depth),
		vals: make([]float64, 0, depth+1),
	}
}

// Eval validates src, converts it to postfix, and evaluates the result.
// Positions in evaluation errors refer to the postfix form, not src.
func (m *Machine) Eval(src []byte) (float64, error) {
	if err := m.Validate(src); err != nil {
		return 0, err
	}
	buf, err := m.AppendPostfix(m.buf[:0], src, -1)
	m.buf = buf
	if err != nil {
		return 0, err
	}
	return m.EvalPostfix(buf, 0)
}

// pushop pushes an operator or open parenthesis.
func (m *Machine) pushop(sym byte, pos int) {
	m.ops = append(m.ops, stackop{sym: sym, pos: pos})
}

// popop removes the top operator from the stack and returns it.
func (m *Machine) popop() stackop {
	r := m.ops[len(m.ops)-1]
	m.ops = m.ops[:len(m.ops)-1]
	return r
}

// push pushes a value.
func (m *Machine) push(v float64) {
	m.vals = append(m.vals, v)
}

// pop removes the top value from the stack and returns it.
func (m *Machine) pop() float64 {
	r := m.vals[len(m.vals)-1]
	m.vals = m.vals[:len(m.vals)-1]
	return r
}

// top is a shortcut to get the top value of the stack.
func (m *Machine) top() *float64 {
	return &m.vals[len(m.vals)-1]
}

// Eval is a shortcut to validate, convert, and evaluate an infix expression.
func Eval(src []byte) (float64, error) {
	var m Machine
	return m.Eval(src)
}

// EvalString is a shortcut to evaluate an infix expression held in a string.
func EvalString(src string) (float64, error) {
	return Eval([]byte(src))
}
