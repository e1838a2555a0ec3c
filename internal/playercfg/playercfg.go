// Package playercfg loads named player statistics from HCL files.
package playercfg

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/tennissim/internal/sim"
)

// File is a parsed player-statistics file.
type File struct {
	Players []Player `hcl:"player,block"`
}

// Player is one named player block.
type Player struct {
	Name           string   `hcl:"name,label"`
	FirstInPct     float64  `hcl:"first_in_pct"`
	FirstWonPct    float64  `hcl:"first_won_pct"`
	SecondWonPct   float64  `hcl:"second_won_pct"`
	AcePct         float64  `hcl:"ace_pct"`
	DFPct          float64  `hcl:"df_pct"`
	ReturnVsFirst  *float64 `hcl:"return_vs_first,optional"`
	ReturnVsSecond *float64 `hcl:"return_vs_second,optional"`
}

// Stats converts the block into simulation statistics.
func (p Player) Stats() sim.PlayerStats {
	return sim.PlayerStats{
		FirstInPct:     p.FirstInPct,
		FirstWonPct:    p.FirstWonPct,
		SecondWonPct:   p.SecondWonPct,
		AcePct:         p.AcePct,
		DFPct:          p.DFPct,
		ReturnVsFirst:  p.ReturnVsFirst,
		ReturnVsSecond: p.ReturnVsSecond,
	}
}

// Load parses an HCL player file and validates every block, so downstream
// simulation code never sees out-of-range rates.
func Load(filename string) (*File, error) {
	if _, err := os.Stat(filename); err != nil {
		return nil, err
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var f File
	diags = gohcl.DecodeBody(file.Body, nil, &f)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	for _, p := range f.Players {
		if err := p.Stats().Validate(); err != nil {
			return nil, fmt.Errorf("player %q: %w", p.Name, err)
		}
	}

	return &f, nil
}

// Lookup returns the named player's statistics.
func (f *File) Lookup(name string) (sim.PlayerStats, bool) {
	for _, p := range f.Players {
		if p.Name == name {
			return p.Stats(), true
		}
	}
	return sim.PlayerStats{}, false
}
