// Package safe provides panic-free division helpers.
//
// Integer, float, complex and decimal division all report ErrDivisionByZero
// instead of trapping, so expression evaluation can mark an operation as not
// evaluable and keep going.
package safe
