// Package cpu implements the Little Minion Computer: a decimal,
// mailbox-addressed toy machine, and a two-pass assembler for its
// mnemonic source language.
//
// The machine has 100 mailboxes each holding a 3-digit decimal word, a
// single calculator register with a NEG flag written only by SUB, a
// 2-digit program counter, and first-in-first-out input and output
// trays. Program and data share the mailboxes, von Neumann style.
//
// The assembler translates `[label] mnemonic [operand] [# comment]`
// source lines into a Program image, resolving forward and backward
// label references across two passes. It also supports .equ equates and
// compile-time $() expression evaluation.
package cpu
