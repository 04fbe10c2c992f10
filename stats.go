package main

import (
	"github.com/maplefeline/nchess/rules"
	"github.com/montanaflynn/stats"
)

// mobility summarises the legal move counts of the side to move, one count
// per piece.
type mobility struct {
	Pieces     int
	Moves      int
	Mean       float64
	Median     float64
	Max        float64
	Percentile float64
}

func measureMobility(p rules.Position) (mobility, error) {
	counts := make([]int, 0, 16)
	total := 0
	for sq, piece := range p.Board {
		if piece.Empty() || piece.Color() != p.Turn {
			continue
		}
		moves, err := rules.LegalMoves(p, rules.Square(sq))
		if err != nil {
			return mobility{}, err
		}
		counts = append(counts, len(moves))
		total += len(moves)
	}
	if len(counts) == 0 {
		return mobility{}, nil
	}
	data := stats.LoadRawData(counts)
	m := mobility{Pieces: len(counts), Moves: total}
	var err error
	if m.Mean, err = stats.Mean(data); err != nil {
		return mobility{}, err
	}
	if m.Median, err = stats.Median(data); err != nil {
		return mobility{}, err
	}
	if m.Max, err = stats.Max(data); err != nil {
		return mobility{}, err
	}
	if m.Percentile, err = stats.Percentile(data, 80); err != nil {
		return mobility{}, err
	}
	return m, nil
}
