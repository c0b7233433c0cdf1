package lr

import (
	"errors"
	"fmt"
)

// ErrNoProductions signals a grammar without any production, or a start
// symbol without productions.
var ErrNoProductions = errors.New("no productions for grammar")

// StructuralError is returned for grammars which cannot be analysed at all.
// Construction is aborted before any CFSM state is created.
type StructuralError struct {
	Grammar string // name of the grammar
	Symbol  string // offending symbol, if any
	Reason  string
	Err     error
}

func (e *StructuralError) Error() string {
	msg := e.Reason
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Symbol != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Symbol)
	}
	return fmt.Sprintf("grammar %s: %s", e.Grammar, msg)
}

func (e *StructuralError) Unwrap() error {
	return e.Err
}

func noProductions(gname string, sym string) *StructuralError {
	return &StructuralError{Grammar: gname, Symbol: sym, Err: ErrNoProductions}
}

// UndeclaredSymbolError is returned for symbols which are neither a declared
// terminal nor a non-terminal with productions.
type UndeclaredSymbolError struct {
	Symbol string
	Rule   string // rule referencing the symbol, if known
}

func (e *UndeclaredSymbolError) Error() string {
	if e.Rule == "" {
		return fmt.Sprintf("undeclared symbol %q", e.Symbol)
	}
	return fmt.Sprintf("undeclared symbol %q in rule %s", e.Symbol, e.Rule)
}
