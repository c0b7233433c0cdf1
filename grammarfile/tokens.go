package grammarfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Tokens returns the tokens declared in front of the separator line,
// without the tokens listed in IGNORE lines. Tokens are returned sorted.
func Tokens(lines []string) (declared []string, ignored []string) {
	tokens := make(map[string]bool)
	ign := make(map[string]bool)
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == Separator {
			break
		}
		if strings.HasPrefix(line, "/*") && strings.HasSuffix(line, "*/") {
			continue
		}
		fields := strings.Fields(line)
		switch {
		case strings.HasPrefix(line, "%token"):
			for _, tok := range fields[1:] {
				tokens[tok] = true
			}
		case strings.HasPrefix(line, "IGNORE"):
			for _, tok := range fields[1:] {
				ign[tok] = true
			}
		}
	}
	for tok := range tokens {
		if !ign[tok] {
			declared = append(declared, tok)
		}
	}
	for tok := range ign {
		ignored = append(ignored, tok)
	}
	sort.Strings(declared)
	sort.Strings(ignored)
	return declared, ignored
}

// CheckTokens returns the declared tokens which are missing from a list of
// known tokens.
func CheckTokens(declared []string, known []string) []string {
	k := make(map[string]bool, len(known))
	for _, tok := range known {
		k[tok] = true
	}
	var missing []string
	for _, tok := range declared {
		if !k[tok] {
			tracer().Infof("%s: Not detected", tok)
			missing = append(missing, tok)
		}
	}
	return missing
}

// ReadTokenList reads a list of known tokens, one per line. Empty lines
// are skipped.
func ReadTokenList(r io.Reader) ([]string, error) {
	var known []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		if tok := strings.TrimSpace(s.Text()); tok != "" {
			known = append(known, tok)
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("cannot read token list: %w", err)
	}
	return known, nil
}

// ReadTokenFile reads a list of known tokens from a file.
func ReadTokenFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadTokenList(f)
}
