package emulator

import (
	"errors"

	"github.com/littleminion/lmc/cpu"
)

// Outcome classifies how one batch record fared.
type Outcome int

const (
	OutcomePass      = Outcome(0) // halted, and the result check (if any) matched
	OutcomeMismatch  = Outcome(1) // halted, but the last output differs from expected
	OutcomeNoOutput  = Outcome(2) // halted with a result check but an empty output tray
	OutcomeMaxCycles = Outcome(3) // the cycle budget ran out before HLT
	OutcomeError     = Outcome(4) // a fatal engine error ended the run
)

// String returns the outcome as report text.
func (o Outcome) String() string {
	switch o {
	case OutcomePass:
		return "pass"
	case OutcomeMismatch:
		return "result mismatch"
	case OutcomeNoOutput:
		return "no output produced"
	case OutcomeMaxCycles:
		return "cycle budget exceeded"
	case OutcomeError:
		return "execution error"
	}
	return "unknown"
}

// Result is the report for a single record.
type Result struct {
	Record  Record
	Outcome Outcome
	Outputs []cpu.Word // full output tray at the end of the run
	Cycles  int        // cycles actually executed
	Err     error      // underlying error for OutcomeError
}

// RunTest executes one record against the program on a fresh machine and
// classifies the outcome.
func RunTest(prog *cpu.Program, rec Record) (res Result) {
	res.Record = rec

	c := cpu.NewCpu()
	c.Load(prog)
	c.PushInput(rec.Inputs...)

	cycles, err := c.Run(rec.MaxCycles)
	res.Outputs = c.OutTray
	res.Cycles = cycles

	switch {
	case err == nil:
		res.Outcome = classify(rec, res.Outputs)
	case errors.Is(err, cpu.ErrMaxCycles(0)):
		res.Outcome = OutcomeMaxCycles
	default:
		res.Outcome = OutcomeError
		res.Err = err
	}
	return
}

// classify compares a halted run against the record's expectation. The
// expected value is checked against the last value written to the
// output tray.
func classify(rec Record, outputs []cpu.Word) Outcome {
	if rec.Expected == nil {
		return OutcomePass
	}
	if len(outputs) == 0 {
		return OutcomeNoOutput
	}
	if outputs[len(outputs)-1] != *rec.Expected {
		return OutcomeMismatch
	}
	return OutcomePass
}

// RunBatch runs every record independently, one fresh machine per
// record; a failing record never stops the remaining records.
func RunBatch(prog *cpu.Program, recs []Record) (results []Result) {
	results = make([]Result, 0, len(recs))
	for _, rec := range recs {
		results = append(results, RunTest(prog, rec))
	}
	return
}
