// Package main runs the register VM's embedded demo program and prints
// its trace. The machine takes no flags and reads no files: the program
// below is the whole workload.
package main

import (
	"fmt"
	"os"

	"github.com/tebeka/atexit"

	"github.com/brianhill/register-vm/emu"
	"github.com/brianhill/register-vm/insts"
)

func main() {
	program := emu.NewProgram([]uint16{
		insts.EncodeLoadI(0, 100), // loadi r0 #100  (0x1064)
		insts.EncodeLoadI(1, 200), // loadi r1 #200  (0x11C8)
		insts.EncodeAdd(2, 0, 1),  // add   r2 r0 r1 (0x2201)
		insts.EncodeHalt(),        // halt           (0x0000)
	})

	machine := emu.NewMachine(program)
	if err := machine.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Execution error: %v\n", err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
