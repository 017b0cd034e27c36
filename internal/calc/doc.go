// Package calc is the domain layer of the calculator: it turns expression
// text into an AST and evaluates it over fixed-width unsigned integers
// through interchangeable engines.
//
// Three engines share the same AST and the same wrap-around semantics:
// the uintx engine (the fixed-precision library this project is built
// around), the bigint engine (math/big reference), and the gmp engine
// (GMP-backed oracle). Running an expression through more than one engine
// and comparing the results is the application's primary correctness check.
package calc
