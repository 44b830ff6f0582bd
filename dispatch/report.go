package dispatch

import (
	"bytes"
	"errors"
	"io"

	"github.com/ezrec/cordic/bounds"
	"github.com/ezrec/cordic/evaluator"
	"github.com/ezrec/cordic/translate"
)

// Report is the outcome of one operation: a result, or the error that
// rejected it.
type Report struct {
	Operation evaluator.Operation
	Subject   string
	Result    evaluator.Result
	Err       error
}

// Message returns the operator message for a rejection.
func (r *Report) Message() string {
	var parse *ErrInputParse
	var outside *bounds.ErrOutOfRange
	var hardware *evaluator.ErrHardware

	switch {
	case r.Err == nil:
		return ""
	case errors.Is(r.Err, ErrUnknownOperation):
		return f("Wrong option selected. Please try again...")
	case errors.Is(r.Err, bounds.ErrDegenerate):
		return f("Entered number is 0.")
	case errors.As(r.Err, &outside):
		return f("Entered number is not in range %v.", outside.Interval)
	case errors.As(r.Err, &parse):
		return f("Entered text is not a number: %v", parse.Text)
	case errors.As(r.Err, &hardware):
		return f("%v failed on the accelerator: %v", r.Subject, hardware.Err)
	}

	return r.Err.Error()
}

func (r *Report) writeBackend(buf *bytes.Buffer, backend string, values []float64) {
	if len(r.Result.Names) == 0 {
		translate.Fprintf(buf, "%v using %v: %f.\n", r.Subject, backend, values[0])
		return
	}

	translate.Fprintf(buf, "%v using %v.", r.Subject, backend)
	for n, name := range r.Result.Names {
		translate.Fprintf(buf, " %v: %f.", name, values[n])
	}
	buf.WriteString("\n")
}

// WriteTo writes the operator text of the report: one line per backend, or
// the rejection message.
func (r *Report) WriteTo(w io.Writer) (n int64, err error) {
	var buf bytes.Buffer

	if r.Err != nil {
		buf.WriteString(r.Message())
		buf.WriteString("\n")
	} else {
		r.writeBackend(&buf, f("CORDIC"), r.Result.Hardware)
		r.writeBackend(&buf, f("math library"), r.Result.Software)
	}

	return buf.WriteTo(w)
}
