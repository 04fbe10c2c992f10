package main

import (
	"crypto/rand"
	"errors"
	"math"
	"math/big"

	"github.com/apex/log"
	"github.com/maplefeline/nchess/rules"
	"github.com/montanaflynn/stats"
)

var errNoMoves = errors.New("no moves available")

const (
	mateScore      = 1
	stalemateScore = -1000
)

// score rates m by how few replies it leaves the opponent.
func score(p rules.Position, m rules.Move) (int, error) {
	next, err := p.ApplyMove(m.From, m.To)
	if err != nil {
		return 0, err
	}
	next = next.AdvanceTurn()
	status, err := rules.Status(next)
	if err != nil {
		return 0, err
	}
	switch status {
	case rules.Checkmate:
		return mateScore, nil
	case rules.Stalemate:
		return stalemateScore, nil
	}
	replies, err := rules.AllLegalMoves(next)
	if err != nil {
		return 0, err
	}
	return -len(replies), nil
}

// decide picks one of the moves scoring at or above the 80th percentile.
func decide(p rules.Position) (rules.Move, error) {
	moves, err := rules.AllLegalMoves(p)
	if err != nil {
		return rules.Move{}, err
	}
	if len(moves) == 0 {
		return rules.Move{}, errNoMoves
	}
	scores := make([]int, 0, len(moves))
	for _, m := range moves {
		s, err := score(p, m)
		if err != nil {
			return rules.Move{}, err
		}
		scores = append(scores, s)
	}
	percentile, err := stats.Percentile(stats.LoadRawData(scores), 80)
	if err != nil {
		log.WithError(err).WithField("moves", len(moves)).Error("percentile")
		return rules.Move{}, err
	}
	lowScore := int(math.Round(percentile))
	choices := make([]rules.Move, 0, len(moves))
	for i, m := range moves {
		if scores[i] >= lowScore {
			choices = append(choices, m)
		}
	}
	if len(choices) == 0 {
		choices = moves
	}
	choice, err := rand.Int(rand.Reader, big.NewInt(int64(len(choices))))
	if err != nil {
		return rules.Move{}, err
	}
	return choices[choice.Uint64()], nil
}
