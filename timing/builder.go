package timing

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/brianhill/register-vm/emu"
)

// Builder can create cores.
type Builder struct {
	engine  sim.Engine
	freq    sim.Freq
	machine *emu.Machine
}

// NewBuilder creates a builder with a default 1 GHz frequency.
func NewBuilder() Builder {
	return Builder{
		freq: 1 * sim.GHz,
	}
}

// WithEngine sets the engine.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the core.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithMachine sets the machine the core drives.
func (b Builder) WithMachine(machine *emu.Machine) Builder {
	b.machine = machine
	return b
}

// Build creates a core.
func (b Builder) Build(name string) *Core {
	if b.machine == nil {
		panic("timing: a core needs a machine")
	}

	c := &Core{machine: b.machine}
	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)

	return c
}
