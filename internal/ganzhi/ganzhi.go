// Package ganzhi defines the ten Heavenly Stems, the twelve Earthly Branches
// and the stem-branch pairs (pillars) built from them.
package ganzhi

import "github.com/zapponejosh/fourpillars/internal/cyclic"

// Stem is one of the ten Heavenly Stems.
type Stem struct {
	index int
	name  string
}

// Branch is one of the twelve Earthly Branches.
type Branch struct {
	index int
	name  string
}

var stems = cyclic.New(
	Stem{0, "甲"},
	Stem{1, "乙"},
	Stem{2, "丙"},
	Stem{3, "丁"},
	Stem{4, "戊"},
	Stem{5, "己"},
	Stem{6, "庚"},
	Stem{7, "辛"},
	Stem{8, "壬"},
	Stem{9, "癸"},
)

var branches = cyclic.New(
	Branch{0, "子"},
	Branch{1, "丑"},
	Branch{2, "寅"},
	Branch{3, "卯"},
	Branch{4, "辰"},
	Branch{5, "巳"},
	Branch{6, "午"},
	Branch{7, "未"},
	Branch{8, "申"},
	Branch{9, "酉"},
	Branch{10, "戌"},
	Branch{11, "亥"},
)

// StemCount and BranchCount are the cycle lengths.
const (
	StemCount   = 10
	BranchCount = 12
)

// StemByIndex returns the stem at n modulo 10.
func StemByIndex(n int) Stem { return stems.ByIndex(n) }

// StemByName looks a stem up by its display name.
func StemByName(name string) (Stem, bool) { return stems.ByName(name) }

// Stems returns all stems in cycle order.
func Stems() []Stem { return stems.All() }

func (s Stem) Index() int          { return s.index }
func (s Stem) DisplayName() string { return s.name }
func (s Stem) String() string      { return s.name }

// Shift returns the stem i places further along the cycle.
func (s Stem) Shift(i int) Stem { return stems.Shift(s, i) }

// BranchByIndex returns the branch at n modulo 12.
func BranchByIndex(n int) Branch { return branches.ByIndex(n) }

// BranchByName looks a branch up by its display name.
func BranchByName(name string) (Branch, bool) { return branches.ByName(name) }

// Branches returns all branches in cycle order.
func Branches() []Branch { return branches.All() }

func (b Branch) Index() int          { return b.index }
func (b Branch) DisplayName() string { return b.name }
func (b Branch) String() string      { return b.name }

// Shift returns the branch i places further along the cycle.
func (b Branch) Shift(i int) Branch { return branches.Shift(b, i) }
