// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"github.com/tarm/serial"

	"github.com/ezrec/cordic/accel"
	"github.com/ezrec/cordic/cordic"
	"github.com/ezrec/cordic/dispatch"
	"github.com/ezrec/cordic/evaluator"
	"github.com/ezrec/cordic/internal"
	"github.com/ezrec/cordic/mathlib"
)

func main() {
	var device string
	var baud int
	var polls int
	var script string
	var verbose bool

	flag.StringVar(&device, "d", "", "Serial console device (default stdin/stdout)")
	flag.IntVar(&baud, "b", 115200, "Serial console baud rate")
	flag.IntVar(&polls, "p", accel.DefaultPollLimit, "Accelerator status polls per pass")
	flag.StringVar(&script, "e", "", "Operator input to run, ';' separates lines")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	var input io.Reader = os.Stdin
	var output io.Writer = os.Stdout

	if len(device) != 0 {
		port, err := serial.OpenPort(&serial.Config{Name: device, Baud: baud})
		if err != nil {
			log.Fatalf("%v: %v", device, err)
		}
		defer port.Close()
		input = port
		output = port
	}

	if len(script) != 0 {
		input = strings.NewReader(strings.ReplaceAll(script, ";", "\n"))
	}

	cd := cordic.NewCordic()
	cd.Verbose = verbose

	drv := accel.NewDriver(cd)
	drv.Verbose = verbose
	drv.PollLimit = polls

	ev := evaluator.NewEvaluator(drv, mathlib.Library{})
	ev.Verbose = verbose

	d := dispatch.NewDispatcher(ev)
	d.Verbose = verbose
	d.Predefine(internal.IterSeq2Concat(cd.Defines(), ev.Defines()))

	con := dispatch.NewConsole(d, input, output)
	con.Verbose = verbose

	err := con.Run()
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}
