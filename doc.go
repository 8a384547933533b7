// Package rpn implements a float64 calculator for infix arithmetic by way of
// Reverse Polish notation.
//
// Evaluation is a pipeline of three steps, each usable on its own. Validate
// checks an infix expression, Postfix converts it to postfix text with the
// shunting-yard algorithm, and EvalPostfix reduces postfix text to a number
// on a stack machine. "2^3^2" becomes "2 3 2 ^ ^" and evaluates to 512;
// exponentiation is right-associative and the other operators are
// left-associative. A leading '-' in operand position is negation, written
// "~" in postfix: "-2^2" becomes "2 2 ^ ~".
//
// Every failure is an *Error whose Kind can be checked with errors.Is.
// Package-level functions are safe for concurrent use. A Machine reuses its
// stacks between calls, which matters when evaluating many expressions.
//
package rpn
