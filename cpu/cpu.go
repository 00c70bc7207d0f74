package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
)

// Cpu is the Little Minion Computer: 100 decimal mailboxes holding both
// program and data, a single calculator register with a NEG flag, a
// 2-digit program counter, and two I/O trays.
//
// A Cpu is exclusively owned by one run. Independent runs use
// independent Cpu values and need no coordination.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Mailbox    [MailboxCount]Word // Program and data memory.
	Calculator Word               // Working register.
	Neg        bool               // Set by SUB when its result went negative.
	Counter    Address            // Program counter.

	InTray  []Word // Pending input values, consumed front-first by IN.
	OutTray []Word // Values written by OUT, in order.

	Halted bool // Set by HLT.
	Cycles int  // Fetch-execute cycles performed since creation.

	// Input, when non-nil, is read one decimal line at a time whenever
	// IN finds the input tray empty. When nil an empty tray is fatal.
	Input io.Reader
	// Output, when non-nil, receives every OUT value as a "%03d" line.
	Output io.Writer

	input *bufio.Reader
}

// NewCpu creates a Cpu with the mailboxes, calculator, and counter all
// cleared.
func NewCpu() *Cpu {
	return &Cpu{}
}

// Load copies an assembled program image into the mailboxes.
func (c *Cpu) Load(prog *Program) {
	c.Mailbox = prog.Mailbox
}

// LoadWords copies a raw machine code sequence into the mailboxes,
// starting at mailbox 00. Cells past the program keep their value.
func (c *Cpu) LoadWords(words []Word) (err error) {
	if len(words) > MailboxCount {
		err = ErrProgramTooLarge(len(words))
		return
	}
	copy(c.Mailbox[:], words)
	return
}

// PushInput appends values to the back of the input tray.
func (c *Cpu) PushInput(values ...Word) {
	c.InTray = append(c.InTray, values...)
}

// Step performs a single fetch-execute cycle. The counter advances
// during the fetch, before the instruction can overwrite it with a
// branch target. Any failure is wrapped with the cycle number and the
// mailbox the instruction was fetched from.
func (c *Cpu) Step() (err error) {
	at := c.Counter
	defer func() {
		if err != nil {
			err = &ErrRuntime{Cycle: c.Cycles, Mailbox: at, Err: err}
		}
	}()

	instr := c.Mailbox[at]
	c.Counter = c.Counter.Next()
	c.Cycles++

	op, operand, err := Decode(instr)
	if err != nil {
		return
	}

	if c.Verbose {
		log.Printf("cpu: %v: %v (opcode %d, operand %v)", at, instr, op, operand)
	}

	switch op {
	case OP_HLT:
		c.Halted = true
	case OP_ADD:
		c.Calculator = (c.Calculator + c.Mailbox[operand]) % WordLimit
	case OP_SUB:
		raw := int(c.Calculator) - int(c.Mailbox[operand])
		c.Neg = raw < 0
		c.Calculator = Word((raw + WordLimit) % WordLimit)
	case OP_STO:
		c.Mailbox[operand] = c.Calculator
	case OP_LDA:
		c.Calculator = c.Mailbox[operand]
	case OP_BR:
		c.Counter = operand
	case OP_BRZ:
		if c.Calculator == 0 {
			c.Counter = operand
		}
	case OP_BRP:
		if !c.Neg {
			c.Counter = operand
		}
	case OP_IO:
		switch operand {
		case IO_IN:
			err = c.readInput()
		case IO_OUT:
			c.OutTray = append(c.OutTray, c.Calculator)
			if c.Output != nil {
				fmt.Fprintf(c.Output, "%v\n", c.Calculator)
			}
		default:
			err = ErrOpcodeInvalid(instr)
		}
	}

	return
}

// readInput pops the front of the input tray into the calculator,
// falling back to the Input reader when the tray is empty.
func (c *Cpu) readInput() (err error) {
	if len(c.InTray) > 0 {
		c.Calculator = c.InTray[0]
		c.InTray = c.InTray[1:]
		return
	}
	if c.Input == nil {
		err = ErrInTrayEmpty
		return
	}

	if c.input == nil {
		c.input = bufio.NewReader(c.Input)
	}
	line, rerr := c.input.ReadString('\n')
	line = strings.TrimSpace(line)
	if len(line) == 0 && rerr != nil {
		err = ErrInTrayEmpty
		return
	}
	v, perr := strconv.Atoi(line)
	if perr != nil {
		err = ErrInputParse(line)
		return
	}
	c.Calculator, err = NewWord(v)
	return
}

// Run steps until HLT executes or until maxCycles instructions have run,
// whichever comes first. A clean halt returns a nil error; running out
// of budget returns ErrMaxCycles so callers can tell the two apart.
func (c *Cpu) Run(maxCycles int) (cycles int, err error) {
	if c.Verbose {
		log.Printf("cpu: run, budget %d cycles", maxCycles)
	}

	for !c.Halted {
		if cycles >= maxCycles {
			err = ErrMaxCycles(maxCycles)
			return
		}
		err = c.Step()
		cycles++
		if err != nil {
			return
		}
	}

	if c.Verbose {
		log.Printf("cpu: halted after %d cycles", cycles)
	}

	return
}
