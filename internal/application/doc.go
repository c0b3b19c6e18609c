// Package application wires the estimator, report renderer and terminal
// dialog together. It runs the interactive start menu and the one-shot quote
// used by the command line, keeping the main package focused on flag parsing.
package application
