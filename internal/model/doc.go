// Package model contains the shared interfaces and data structures.
//
// This package should contain interfaces that are shared by several
// packages within the codebase, with the objective of separating unrelated
// pieces of code and making unit testing easier. In general, it should
// not contain logic.
//
// - logger.go: the apex/log compatible logger used to report outcomes.
package model
