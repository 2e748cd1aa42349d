package format

import (
	"errors"
	"fmt"

	"vhdlfmt/internal/token"
)

var (
	// ErrUnsupportedConstruct marks a well-formed tree using a feature the
	// printers do not implement, such as use clauses inside a block
	// configuration.
	ErrUnsupportedConstruct = errors.New("unsupported construct")
	// ErrTokenContract marks a token role that is absent from the stream or
	// has the wrong kind.
	ErrTokenContract = errors.New("token contract violation")
	// ErrNestingTooDeep marks a tree nested deeper than Options.MaxDepth.
	ErrNestingTooDeep = errors.New("nesting too deep")
)

// InternalError reports a mismatch between the printer and the tree it was
// handed. It is never caused by the user's source text alone.
type InternalError struct {
	Kind  error
	Token token.ID
	Msg   string
}

func (e *InternalError) Error() string {
	if e.Token.IsValid() {
		return fmt.Sprintf("format: %v at token %d: %s", e.Kind, e.Token, e.Msg)
	}
	return fmt.Sprintf("format: %v: %s", e.Kind, e.Msg)
}

func (e *InternalError) Unwrap() error { return e.Kind }

func fail(kind error, id token.ID, format string, args ...any) {
	panic(&InternalError{Kind: kind, Token: id, Msg: fmt.Sprintf(format, args...)})
}

// recoverInternal turns an *InternalError panic into err. Other panics are
// re-raised.
func recoverInternal(err *error) {
	r := recover()
	if r == nil {
		return
	}
	ie, ok := r.(*InternalError)
	if !ok {
		panic(r)
	}
	*err = ie
}
