// Package format converts application record fields into display strings.
//
// Every function tolerates missing input: absent values render as Missing ("-")
// and unparseable dates render as InvalidDate. Formatting never mutates the
// source record.
//
// Output is deterministic across environments. Digit grouping always uses
// English separators and dates always render day-month-year with "-",
// regardless of the process locale.
package format
