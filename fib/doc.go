// Package fib computes Fibonacci numbers on the cpu package's register
// machine, simulating the call tree of the naive recursive definition with
// explicit activation records on the machine stack.
package fib
