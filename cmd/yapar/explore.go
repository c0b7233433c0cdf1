package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/yapar/lr"
	"github.com/npillmayer/yapar/render"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "explore FILE",
		Short: "Build the CFSM and explore it interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  runExplore,
	}
	cmd.Flags().String("tokens", "", "file with known tokens, one per line")
	cmd.Flags().String("accept", "scan", "accept detection [scan|completion]")
	rootCmd.AddCommand(cmd)
}

func runExplore(cmd *cobra.Command, args []string) error {
	_, ga, err := loadGrammar(args[0])
	if err != nil {
		return err
	}
	cfsm, err := buildCFSM(ga)
	if err != nil {
		return err
	}
	repl, err := readline.New("yapar> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	intp := &Intp{
		GA:     ga,
		CFSM:   cfsm,
		Marker: conf.Render.DotMarker,
		out:    os.Stdout,
		repl:   repl,
	}
	pterm.Info.Println(fmt.Sprintf("CFSM for %s has %d states", ga.Grammar().Name, cfsm.Size()))
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()
	return nil
}

// Intp is our interpreter object
type Intp struct {
	GA     *lr.LRAnalysis
	CFSM   *lr.CFSM
	Marker string // dot marker for items
	out    io.Writer
	repl   *readline.Instance
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	fmt.Fprintln(intp.out, "Good bye!")
}

const helpText = `Commands:
  states          list all states
  state N         print the items and transitions of state N
  goto N SYM      print the successor of state N for symbol SYM
  first SYM       print FIRST(SYM)
  help            print this text
  quit            leave yapar`

// Eval evaluates a command, given on a line by itself.
func (intp *Intp) Eval(line string) (bool, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return false, nil
	}
	switch cmd := strings.ToLower(args[0]); cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprintln(intp.out, helpText)
	case "states":
		fmt.Fprintln(intp.out, render.StateTable(intp.CFSM, intp.Marker))
	case "state":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: state N")
		}
		s, err := intp.state(args[1])
		if err != nil {
			return false, err
		}
		intp.printState(s)
	case "goto":
		if len(args) != 3 {
			return false, fmt.Errorf("usage: goto N SYM")
		}
		s, err := intp.state(args[1])
		if err != nil {
			return false, err
		}
		A, err := intp.symbol(args[2])
		if err != nil {
			return false, err
		}
		next, ok := intp.CFSM.Successor(s.ID, A)
		if !ok {
			fmt.Fprintf(intp.out, "state %d has no transition for %s\n", s.ID, A)
			return false, nil
		}
		intp.printState(next)
	case "first":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: first SYM")
		}
		F, err := intp.GA.FirstOf(args[1])
		if err != nil {
			return false, err
		}
		fmt.Fprintf(intp.out, "FIRST(%s) = { %s }\n", args[1], strings.Join(lr.SymbolNames(F), ", "))
	default:
		return false, fmt.Errorf("unknown command %q, try 'help'", cmd)
	}
	return false, nil
}

func (intp *Intp) state(arg string) (*lr.CFSMState, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("not a state number: %s", arg)
	}
	s := intp.CFSM.State(uint(id))
	if s == nil {
		return nil, fmt.Errorf("no state %d", id)
	}
	return s, nil
}

func (intp *Intp) symbol(name string) (*lr.Symbol, error) {
	A := intp.CFSM.Grammar().Symbol(name)
	if A == nil {
		return nil, &lr.UndeclaredSymbolError{Symbol: name}
	}
	return A, nil
}

func (intp *Intp) printState(s *lr.CFSMState) {
	title := fmt.Sprintf("State %d", s.ID)
	if s.Accept {
		title += " (accept)"
	}
	fmt.Fprintln(intp.out, title)
	for _, line := range s.Lines(intp.Marker) {
		prefix := "  "
		if line.Kernel {
			prefix = "* "
		}
		fmt.Fprintln(intp.out, prefix+line.Text)
	}
	for _, e := range intp.CFSM.Transitions() {
		if e.From == s.ID {
			fmt.Fprintf(intp.out, "  --%s--> %d\n", e.Label, e.To)
		}
	}
}
