package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/viant/knn/dataset"
)

// LoadFunc loads a dataset from a path typed at the prompt.
type LoadFunc func(path string) (dataset.Dataset, error)

const menu = `Choose an option:
a) Check all observations from the test set
b) Check one observation from the console
c) Change k
d) Exit
`

// maxLineSize bounds a single line of console input.
const maxLineSize = 64 << 20

type console struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newConsole(in io.Reader, out io.Writer) *console {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	return &console{scanner: scanner, out: out}
}

// prompt writes msg and returns the next trimmed input line, or io.EOF when
// input is exhausted.
func (c *console) prompt(msg string) (string, error) {
	fmt.Fprint(c.out, msg)
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.scanner.Text()), nil
}

// Shell dispatches menu options to a Session:
// a evaluates a test file, b predicts one observation, c changes k, d exits.
type Shell struct {
	session *Session
	console *console
	load    LoadFunc
}

// NewShell creates a shell reading commands from in and writing results to
// out. A nil load defaults to dataset.LoadFile.
func NewShell(s *Session, in io.Reader, out io.Writer, load LoadFunc) *Shell {
	if load == nil {
		load = dataset.LoadFile
	}
	return &Shell{session: s, console: newConsole(in, out), load: load}
}

// Start prompts for the training file and k, then runs the menu loop.
func Start(in io.Reader, out io.Writer, load LoadFunc, opts ...Option) error {
	if load == nil {
		load = dataset.LoadFile
	}
	c := newConsole(in, out)
	path, err := c.prompt("Enter the path to the training file: ")
	if err != nil {
		return err
	}
	training, err := load(path)
	if err != nil {
		return err
	}
	text, err := c.prompt("Enter the value of k: ")
	if err != nil {
		return err
	}
	k, err := parseK(text)
	if err != nil {
		return err
	}
	s, err := New(training, k, opts...)
	if err != nil {
		return err
	}
	return (&Shell{session: s, console: c, load: load}).Run()
}

// Run executes the menu loop until the exit option or end of input. Errors
// from individual operations are reported and the loop continues.
func (sh *Shell) Run() error {
	for {
		fmt.Fprint(sh.console.out, menu)
		option, err := sh.console.prompt("Option: ")
		if err != nil {
			return ignoreEOF(err)
		}
		switch option {
		case "a":
			err = sh.evaluateBatch()
		case "b":
			err = sh.predictOne()
		case "c":
			err = sh.setK()
		case "d":
			return nil
		default:
			fmt.Fprintln(sh.console.out, "Invalid option")
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(sh.console.out, "Error: %v\n", err)
		}
	}
}

func (sh *Shell) evaluateBatch() error {
	path, err := sh.console.prompt("Enter the path to the test file: ")
	if err != nil {
		return err
	}
	test, err := sh.load(path)
	if err != nil {
		return err
	}
	report, err := sh.session.EvaluateBatch(test)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return WriteReport(sh.console.out, report)
}

func (sh *Shell) predictOne() error {
	line, err := sh.console.prompt("Enter the observation: ")
	if err != nil {
		return err
	}
	features, err := dataset.ParseFeatures(line)
	if err != nil {
		return err
	}
	label, err := sh.session.PredictOne(features)
	if err != nil {
		return fmt.Errorf("observation %q: %w", line, err)
	}
	_, err = fmt.Fprintf(sh.console.out, "Predicted Label: %s\n", label)
	return err
}

func (sh *Shell) setK() error {
	text, err := sh.console.prompt("Enter the new value of k: ")
	if err != nil {
		return err
	}
	k, err := parseK(text)
	if err != nil {
		return err
	}
	return sh.session.SetK(k)
}

func parseK(text string) (int, error) {
	k, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("invalid k %q: not an integer", text)
	}
	return k, nil
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
