// Package app wires the guardpatrol run: it builds the logger, reads the
// map, walks the guard, searches for loop-inducing obstructions and prints
// both answers.
package app
