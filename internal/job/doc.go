// Package job models a painting job: the usable area of each wall after its
// openings are removed, accumulated into a total that feeds the estimator.
// It also parses the compact wall notation accepted on the command line.
package job
