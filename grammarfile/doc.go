/*
Package grammarfile reads grammar files and builds grammars for package lr.

A grammar file consists of a declaration part and a rule part, separated
by a line containing "%%" only:

    %token ID PLUS
    IGNORE WS
    %%
    expr : expr PLUS ID
         | ID
         ;

Validate checks the line structure of a file, Tokens extracts the declared
tokens, and Parse builds an lr.Grammar from the rules.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammarfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'yapar.grammarfile'.
func tracer() tracing.Trace {
	return tracing.Select("yapar.grammarfile")
}
