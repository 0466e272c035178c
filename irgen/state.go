package irgen

// ObjectProp records which kind of declaration is currently being walked,
// threaded through State so a nested pattern item knows whether it is
// declaring a Var or a Const binding without being told again at every
// level.
type ObjectProp int

const (
	// ObjectPropNone means no declaration is in progress.
	ObjectPropNone ObjectProp = iota
	ObjectPropVar
	ObjectPropConst
)

func (p ObjectProp) String() string {
	switch p {
	case ObjectPropVar:
		return "Var"
	case ObjectPropConst:
		return "Const"
	default:
		return "None"
	}
}

// State is the shared, mutable context threaded through a walk: the
// ambient declaration property a pattern item inherits from its enclosing
// VarDefineExpression/ConstDefineExpression, plus the caller's escape
// strictness choice.
type State struct {
	ObjectProp    ObjectProp
	StrictEscapes bool
}

// withObjectProp runs fn with ObjectProp set to prop, restoring the
// previous value afterward so a declaration never leaks its property into
// whatever walk comes after it.
func (s *State) withObjectProp(prop ObjectProp, fn func() error) error {
	prev := s.ObjectProp
	s.ObjectProp = prop
	err := fn()
	s.ObjectProp = prev
	return err
}
