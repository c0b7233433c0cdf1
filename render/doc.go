/*
Package render presents the CFSM of a grammar: as a Graphviz Dot file,
converted to PDF by the external 'dot' command, and as text tables for
terminals.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'yapar.render'.
func tracer() tracing.Trace {
	return tracing.Select("yapar.render")
}
