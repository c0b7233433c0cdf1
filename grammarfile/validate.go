package grammarfile

import (
	"fmt"
	"sort"
	"strings"
)

// Messages for problems found by Validate.
const (
	MsgInvalidComment  = "Invalid comment format"
	MsgInvalidToken    = "Invalid token"
	MsgInvalidTokenFmt = "Invalid 'token' format"
	MsgEmptyTokenDecl  = "Unidentified %token"
	MsgMisplacedToken  = "Invalid '%token' format"
	MsgEmptyIgnore     = "Unidentified 'IGNORE'"
	MsgMissingMark     = "Missing '%%' mark"
)

// Separator is the line separating declarations from rules.
const Separator = "%%"

// Problem is a problem found in a line of a grammar file. Line is 0 for
// problems concerning the file as a whole.
type Problem struct {
	Line    int
	Message string
}

func (p Problem) String() string {
	if p.Line == 0 {
		return p.Message
	}
	return fmt.Sprintf("line %d: %s", p.Line, p.Message)
}

// ValidationError lists the problems of a grammar file, one per distinct
// message.
type ValidationError struct {
	File     string
	Problems []Problem
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.String()
	}
	return fmt.Sprintf("grammar file %s is invalid:\n%s", e.File, strings.Join(msgs, "\n"))
}

// Messages returns the distinct problem messages.
func (e *ValidationError) Messages() []string {
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.Message
	}
	return msgs
}

// Lines splits the source of a grammar file into lines.
func Lines(src string) []string {
	return strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")
}

// Validate checks the line structure of a grammar file. Every line is
// checked on its own, with leading and trailing white space removed. Block
// comments have to start and end on the same line. If problems are found,
// Validate returns a *ValidationError.
func Validate(file string, lines []string) error {
	found := make(map[string]Problem)
	report := func(lineno int, msg string) {
		if _, ok := found[msg]; !ok {
			found[msg] = Problem{Line: lineno, Message: msg}
		}
	}
	separated := false
	for n, line := range lines {
		lineno := n + 1
		line = strings.TrimSpace(line)
		opens, closes := strings.HasPrefix(line, "/*"), strings.HasSuffix(line, "*/")
		if opens != closes {
			report(lineno, MsgInvalidComment)
		}
		if opens && closes {
			continue
		}
		if strings.HasPrefix(line, "%") && line != Separator {
			if separated {
				report(lineno, MsgInvalidToken)
			}
			if strings.HasPrefix(line, "%token") {
				if len(strings.Fields(line)) < 2 {
					report(lineno, MsgEmptyTokenDecl)
				}
			} else {
				report(lineno, MsgInvalidTokenFmt)
			}
		}
		if strings.Contains(line, "token") && !strings.HasPrefix(line, "%") {
			report(lineno, MsgMisplacedToken)
		}
		if strings.HasPrefix(line, "IGNORE") && len(strings.Fields(line)) < 2 {
			report(lineno, MsgEmptyIgnore)
		}
		if line == Separator {
			separated = true
		}
	}
	if !separated {
		report(0, MsgMissingMark)
	}
	if len(found) == 0 {
		return nil
	}
	err := &ValidationError{File: file}
	for _, p := range found {
		err.Problems = append(err.Problems, p)
	}
	sort.Slice(err.Problems, func(i, j int) bool {
		return err.Problems[i].Message < err.Problems[j].Message
	})
	tracer().Infof("%s: %d problem(s) found", file, len(err.Problems))
	return err
}
