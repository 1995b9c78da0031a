package expr

// IfOp emits its consequent only where the condition holds.
type IfOp struct {
	shape
	cond Operator[bool]
	then Emitter
}

// If returns a node that, per coordinate, emits then when cond is true.
// The branch must be an Emitter: a raw view cannot be written through a conditional.
func If(cond Operator[bool], then Emitter) (*IfOp, error) {
	s, err := broadcast("if", cond, then)
	if err != nil {
		return nil, err
	}
	return &IfOp{shape: s, cond: cond, then: then}, nil
}

// Emit evaluates the condition and, if true, the consequent.
func (o *IfOp) Emit(idx Index) {
	if o.cond.At(idx) {
		o.then.Emit(idx)
	}
}

// IfElseOp emits exactly one of two branches per coordinate.
type IfElseOp struct {
	shape
	cond      Operator[bool]
	then, els Emitter
}

// IfElse returns a node that emits then where cond is true and els elsewhere.
// The branch not taken is never evaluated.
func IfElse(cond Operator[bool], then, els Emitter) (*IfElseOp, error) {
	s, err := broadcast("ifelse", cond, then, els)
	if err != nil {
		return nil, err
	}
	return &IfElseOp{shape: s, cond: cond, then: then, els: els}, nil
}

// Emit evaluates the condition and then exactly one branch.
func (o *IfElseOp) Emit(idx Index) {
	if o.cond.At(idx) {
		o.then.Emit(idx)
	} else {
		o.els.Emit(idx)
	}
}
