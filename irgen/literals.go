package irgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chtholly-lang/chtholly/ir"
	"github.com/chtholly-lang/chtholly/ptree"
)

func walkIntLiteral(o ptree.Observer, seq *ir.Sequence, _ *State) error {
	n, err := strconv.ParseInt(o.Value().Value, 10, 64)
	if err != nil {
		return fmt.Errorf("irgen: IntLiteral %q: %w", o.Value().Value, err)
	}
	seq.Push(ir.Literal.Int(n))
	return nil
}

func walkFloatLiteral(o ptree.Observer, seq *ir.Sequence, _ *State) error {
	f, err := strconv.ParseFloat(o.Value().Value, 64)
	if err != nil {
		return fmt.Errorf("irgen: FloatLiteral %q: %w", o.Value().Value, err)
	}
	seq.Push(ir.Literal.Float(f))
	return nil
}

func walkStringLiteral(o ptree.Observer, seq *ir.Sequence, state *State) error {
	raw := o.Value().Value
	stripped := strings.TrimSuffix(strings.TrimPrefix(raw, `"`), `"`)
	s, err := unescape(stripped, state)
	if err != nil {
		return err
	}
	seq.Push(ir.Literal.String(s))
	return nil
}

func walkNullLiteral(_ ptree.Observer, seq *ir.Sequence, _ *State) error {
	seq.Push(ir.Literal.Null())
	return nil
}

func walkUndefLiteral(_ ptree.Observer, seq *ir.Sequence, _ *State) error {
	seq.Push(ir.Literal.Undef())
	return nil
}

func walkTrueLiteral(_ ptree.Observer, seq *ir.Sequence, _ *State) error {
	seq.Push(ir.Literal.Bool(true))
	return nil
}

func walkFalseLiteral(_ ptree.Observer, seq *ir.Sequence, _ *State) error {
	seq.Push(ir.Literal.Bool(false))
	return nil
}

func walkIdentifierUse(o ptree.Observer, seq *ir.Sequence, _ *State) error {
	seq.Push(ir.Object.Use(o.Value().Value))
	return nil
}

// unescape decodes the backslash escapes StringLiteral recognizes: \" \\ \b
// \f \n \r \t \v. An unrecognized escape is a lowering error when
// state's strict mode is on, matching the default; the one caller that
// wants the lossy behavior threads a State with StrictEscapes cleared.
func unescape(s string, state *State) (string, error) {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'v':
			b.WriteByte('\v')
		default:
			if state.StrictEscapes {
				return "", fmt.Errorf("irgen: unrecognized string escape '\\%c'", s[i])
			}
			b.WriteByte(s[i])
		}
	}
	return b.String(), nil
}
