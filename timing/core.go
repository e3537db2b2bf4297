// Package timing provides a cycle-level model of the register VM built
// on the Akita simulation framework. The functional semantics stay in
// package emu; timing only decides when each fetch/decode/evaluate
// cycle happens.
package timing

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/brianhill/register-vm/emu"
)

// Statistics holds cycle model statistics.
type Statistics struct {
	// Cycles is the total number of cycles simulated.
	Cycles uint64

	// Instructions is the number of instructions completed (retired).
	Instructions uint64
}

// CPI returns the cycles per instruction.
func (s Statistics) CPI() float64 {
	if s.Instructions == 0 {
		return 0
	}
	return float64(s.Cycles) / float64(s.Instructions)
}

// Core drives one machine at one instruction per cycle. The machine has
// no hazards and no memory system, so every cycle retires exactly one
// instruction until the program halts or faults.
type Core struct {
	*sim.TickingComponent

	machine *emu.Machine
	stats   Statistics
	err     error
}

// Machine returns the machine the core drives.
func (c *Core) Machine() *emu.Machine {
	return c.machine
}

// Stats returns the statistics collected so far.
func (c *Core) Stats() Statistics {
	return c.stats
}

// Err returns the fault that stopped the core, if any.
func (c *Core) Err() error {
	return c.err
}

// Start schedules the first cycle. The caller drives the engine.
func (c *Core) Start() {
	c.TickNow()
}

// Tick runs the machine for one cycle.
func (c *Core) Tick() (madeProgress bool) {
	if c.err != nil || !c.machine.Running() {
		return false
	}

	result := c.machine.Step()
	c.stats.Cycles++

	if result.Err != nil {
		c.err = result.Err
		Trace("cycle fault",
			"Time", float64(c.Engine.CurrentTime()*1e9),
			"Cycle", c.stats.Cycles,
			"Err", result.Err.Error(),
		)
		return false
	}

	c.stats.Instructions++
	Trace("cycle",
		"Time", float64(c.Engine.CurrentTime()*1e9),
		"Cycle", c.stats.Cycles,
		"PC", c.machine.PC(),
		"Halted", result.Halted,
	)

	return true
}
