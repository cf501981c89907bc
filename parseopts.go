package calculator

// Option is an option for parsing expressions.
type Option interface {
	parseOption(parsectx) parsectx
}

// parsectx holds the settings for a single parse.
type parsectx struct {
	// strict indicates that tokens which are neither numbers nor operators
	// are errors rather than being skipped.
	strict bool
}

type strictopt bool

// Strict makes the parser reject any token that is neither a number nor an
// operator with a *MalformedExpressionError. This includes the empty token
// produced by two adjacent spaces.
func Strict() Option {
	return strictopt(true)
}

// Permissive makes the parser silently skip tokens that are neither numbers
// nor operators. This is the default.
func Permissive() Option {
	return strictopt(false)
}

func (o strictopt) parseOption(p parsectx) parsectx {
	p.strict = bool(o)
	return p
}

// newparsectx applies options in order. Nil options are ignored.
func newparsectx(opts []Option) parsectx {
	var p parsectx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		p = opt.parseOption(p)
	}
	return p
}
