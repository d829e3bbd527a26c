package ganzhi

import "github.com/zapponejosh/fourpillars/internal/cyclic"

// Pillar is a stem-branch pair for one unit of time.
type Pillar struct {
	Stem   Stem
	Branch Branch
}

// NewPillar builds a pillar from raw stem and branch ordinals.
func NewPillar(stem, branch int) Pillar {
	return Pillar{Stem: StemByIndex(stem), Branch: BranchByIndex(branch)}
}

// PillarBySexagenary returns the n-th pair of the sixty-cycle, 0 being 甲子.
func PillarBySexagenary(n int) Pillar {
	n = cyclic.Mod(n, 60)
	return NewPillar(n, n)
}

// Sexagenary returns the pillar's position in the sixty-cycle (0 = 甲子),
// or -1 if the stem and branch have different parity and so never pair.
func (p Pillar) Sexagenary() int {
	s, b := p.Stem.Index(), p.Branch.Index()
	if s%2 != b%2 {
		return -1
	}
	// n ≡ s (mod 10) and n ≡ b (mod 12)
	return cyclic.Mod(6*s-5*b, 60)
}

// Names returns the stem and branch display names.
func (p Pillar) Names() [2]string {
	return [2]string{p.Stem.DisplayName(), p.Branch.DisplayName()}
}

func (p Pillar) String() string {
	return p.Stem.DisplayName() + p.Branch.DisplayName()
}
