// Package decompose evaluates a condition while recording its structure, so
// a failed assertion can show the operands as well as the verdict.
//
// Go has no operator overloading, so a condition is spelled as a method
// chain starting from Capture:
//
//	decompose.Capture(len(items)).Add(extra).Le(limit)
//
// which evaluates and renders as
//
//	(3 + 2) <= 4
//
// Every operand is evaluated once, by Go, before it is passed in. Invalid
// operations such as division by zero do not panic; the node is marked as
// not evaluable and the condition fails.
package decompose
