// Package cpu implements the COMET II instruction set simulator.
//
// The CPU has eight 16-bit general-purpose registers (GR0-GR7), a stack
// pointer (SP) that starts at the end of memory and grows downward, a
// program register (PR), and the OF, SF and ZF condition flags. Two more
// flags control the execution loop: HLT is raised by the HLT instruction,
// and SS requests a single step.
//
// Instructions are executed directly against a Memory image, which is
// usually produced by the asm package. Supervisor calls (SVC) provide
// line-oriented input and output through an io.Channel.
package cpu
