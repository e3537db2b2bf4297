package emu

// Program is an immutable sequence of 16-bit instruction words, fixed
// at construction time. There is no self-modifying code: nothing
// mutates a program once built.
type Program struct {
	words []uint16
}

// NewProgram creates a program from the given words. The slice is
// copied, so later mutation by the caller cannot reach the store.
func NewProgram(words []uint16) *Program {
	p := &Program{words: make([]uint16, len(words))}
	copy(p.words, words)
	return p
}

// Len returns the number of words in the program.
func (p *Program) Len() int {
	return len(p.words)
}

// Word returns the word at index i.
func (p *Program) Word(i int) uint16 {
	return p.words[i]
}
