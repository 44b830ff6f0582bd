package dispatch

import (
	"bufio"
	"fmt"
	"io"
	"log"

	"github.com/google/shlex"
)

// Console runs the operator dialogue over a line-oriented stream.
type Console struct {
	Verbose    bool
	Dispatcher *Dispatcher
	Input      io.Reader
	Output     io.Writer
}

// NewConsole creates a console for a dispatcher.
func NewConsole(d *Dispatcher, input io.Reader, output io.Writer) (con *Console) {
	con = &Console{
		Dispatcher: d,
		Input:      input,
		Output:     output,
	}
	return
}

// Menu writes the operation menu.
func (con *Console) Menu() (err error) {
	ev := con.Dispatcher.Evaluator

	w := bufio.NewWriter(con.Output)
	fmt.Fprintln(w, f("********************* CORDIC *********************"))
	fmt.Fprintln(w, f("Please select the required operation from the list."))
	for op := range ev.Operations() {
		fmt.Fprintln(w, f("%d - %v", int(op), op))
	}
	fmt.Fprintln(w, f(">> "))

	err = w.Flush()
	return
}

// step writes the outcome of one input.
func (con *Console) step(step Step) (err error) {
	switch step.State {
	case STATE_AWAITING:
		_, err = fmt.Fprintln(con.Output, step.Prompt)
	case STATE_REPORTED, STATE_REJECTED:
		_, err = step.Report.WriteTo(con.Output)
		if err != nil {
			return
		}
		_, err = fmt.Fprintln(con.Output)
		if err != nil {
			return
		}
		err = con.Menu()
	}
	return
}

// Line handles one line of operator input. Words on the line are split
// shell-style; when idle the first word selects the operation and the rest
// are supplied as operands.
func (con *Console) Line(line string) (err error) {
	d := con.Dispatcher

	words, err := shlex.Split(line)
	if err != nil {
		err = con.step(d.reject(&ErrInputParse{Text: line, Err: err}))
		return
	}

	for _, word := range words {
		var step Step
		if d.State() == STATE_IDLE {
			if con.Verbose {
				log.Printf("dispatch: console: select %q", word)
			}
			step = d.Select(word)
		} else {
			if con.Verbose {
				log.Printf("dispatch: console: supply %q", word)
			}
			step = d.Supply(word)
		}

		err = con.step(step)
		if err != nil {
			return
		}

		if step.State == STATE_REJECTED {
			// The rest of the line belonged to the rejected operation.
			break
		}
	}

	return
}

// Run writes the menu, then handles input lines until the input ends.
func (con *Console) Run() (err error) {
	err = con.Menu()
	if err != nil {
		return
	}

	scanner := bufio.NewScanner(con.Input)
	for scanner.Scan() {
		err = con.Line(scanner.Text())
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	return
}
