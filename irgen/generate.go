package irgen

import (
	chtholly "github.com/chtholly-lang/chtholly"
	"github.com/chtholly-lang/chtholly/ir"
	"github.com/chtholly-lang/chtholly/ptree"
)

// Generate lowers tree's top-level Expression node into an ir.Sequence. cfg
// supplies the escape-strictness choice; DefaultConfig is used if none is
// given. A notImplementedError surfacing from deep inside the walk is
// returned to the caller unwrapped, so it can be distinguished (errors.As)
// from a genuine lowering failure such as a malformed numeric literal.
func Generate(tree *ptree.Tree, cfg ...chtholly.Config) (ir.Sequence, error) {
	c := chtholly.DefaultConfig()
	if len(cfg) > 0 {
		c = cfg[0]
	}
	state := &State{StrictEscapes: c.StrictEscapes}
	var seq ir.Sequence
	root := tree.Observer()
	tracer().Infof("irgen: generating from root %s", root.Name())
	if err := walk(root, &seq, state); err != nil {
		return nil, err
	}
	return seq, nil
}
