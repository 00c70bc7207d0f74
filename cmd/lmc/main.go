package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/littleminion/lmc/cpu"
	"github.com/littleminion/lmc/emulator"
)

// promptReader prints a prompt before every interactive read.
type promptReader struct {
	r io.Reader
	w io.Writer
}

func (pr *promptReader) Read(p []byte) (n int, err error) {
	fmt.Fprint(pr.w, "Input: ")
	return pr.r.Read(p)
}

func main() {
	var compile string
	var machine string
	var output string
	var save bool
	var test string
	var inputs string
	var maxCycles int
	var quiet bool
	var verbose bool

	flag.StringVar(&compile, "c", "", ".lmc source file to assemble")
	flag.StringVar(&machine, "m", "", "machine code file to load")
	flag.StringVar(&output, "o", "", "write assembled machine code to file")
	flag.BoolVar(&save, "s", false, "assemble only, do not execute")
	flag.StringVar(&test, "t", "", "batch test file to run")
	flag.StringVar(&inputs, "i", "", "comma separated input tray values")
	flag.IntVar(&maxCycles, "x", 50000, "cycle budget per run")
	flag.BoolVar(&quiet, "q", false, "suppress OUT printing")
	flag.BoolVar(&verbose, "v", false, "verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: unknown arguments: %v", os.Args[0], flag.Args())
	}

	var prog *cpu.Program

	switch {
	case len(compile) != 0:
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		asm := &cpu.Assembler{Verbose: verbose}
		prog, err = asm.Parse(inf)
		inf.Close()
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	case len(machine) != 0:
		inf, err := os.Open(machine)
		if err != nil {
			log.Fatalf("%v: %v", machine, err)
		}
		prog, err = cpu.ParseProgram(inf)
		inf.Close()
		if err != nil {
			log.Fatalf("%v: %v", machine, err)
		}
	default:
		log.Fatalf("%v: either -c or -m is required", os.Args[0])
	}

	if len(output) != 0 {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		_, err = prog.WriteTo(ouf)
		ouf.Close()
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
	}

	if save {
		return
	}

	if len(test) != 0 {
		runBatch(prog, test)
		return
	}

	run(prog, inputs, maxCycles, quiet, verbose)
}

// runBatch runs every record of a batch file and reports one outcome per
// record, exiting non-zero if any record did not pass.
func runBatch(prog *cpu.Program, test string) {
	inf, err := os.Open(test)
	if err != nil {
		log.Fatalf("%v: %v", test, err)
	}
	recs, err := emulator.ParseRecords(inf)
	inf.Close()
	if err != nil {
		log.Fatalf("%v: %v", test, err)
	}

	failures := 0
	for _, res := range emulator.RunBatch(prog, recs) {
		if res.Outcome != emulator.OutcomePass {
			failures++
		}
		if res.Err != nil {
			log.Printf("%v: %v: %v", res.Record.Name, res.Outcome, res.Err)
		} else {
			log.Printf("%v: %v (%d cycles)", res.Record.Name, res.Outcome, res.Cycles)
		}
	}
	if failures != 0 {
		os.Exit(1)
	}
}

// run executes the program once, with the input tray preloaded from -i
// and stdin as the interactive fallback for IN.
func run(prog *cpu.Program, inputs string, maxCycles int, quiet, verbose bool) {
	c := cpu.NewCpu()
	c.Verbose = verbose
	c.Load(prog)

	if len(inputs) != 0 {
		for _, part := range strings.Split(inputs, ",") {
			v, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				log.Fatalf("input %v: %v", part, err)
			}
			w, err := cpu.NewWord(v)
			if err != nil {
				log.Fatalf("input %v: %v", part, err)
			}
			c.PushInput(w)
		}
	}

	if !quiet {
		c.Output = os.Stdout
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		c.Input = &promptReader{r: os.Stdin, w: os.Stderr}
	} else {
		c.Input = os.Stdin
	}

	_, err := c.Run(maxCycles)
	if err != nil {
		log.Fatal(err)
	}
}
