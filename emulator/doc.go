// Package emulator provides the batch test harness and a high-level
// execute front-end over the cpu package.
//
// A batch file holds one record per line in the compact
// `name;input1,...,input_n;expected;max_cycles` format. Each record runs
// against a fresh machine under its own cycle budget and reports an
// independent pass / mismatch / budget-exceeded / error outcome, so one
// failing record never aborts the rest.
package emulator
