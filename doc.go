/*
Package yapar is an LR(0) front end for a small grammar dialect.

YAPar reads grammar files consisting of token declarations and productions,
builds the canonical collection of LR(0) item sets for the grammar and hands
the resulting automaton (the CFSM) to a renderer. Package structure is
as follows:

■ lr: Package lr implements grammars, FIRST sets, LR(0) items, closure and
goto operations, and the construction of the characteristic finite state
machine (CFSM).

■ lr/scanner: Package scanner tokenizes the production section of grammar files.

■ grammarfile: Package grammarfile validates grammar files and reads them
into grammars of package lr.

■ render: Package render exports a CFSM to Graphviz and to text tables.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package yapar
