// Package cpu provides the instructions of the QingKe core that have no Go
// equivalent. Each function executes a single instruction.
//
// Instructions that depend on the interrupt controller's configuration, i.e.
// waiting for an event, are part of package pfic.
//
// Outside of TinyGo builds the functions only model their effect on MSTATUS,
// see package csr.
package cpu
