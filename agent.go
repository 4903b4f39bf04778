package main

import (
	"crypto/rand"
	"math/big"
	"sort"
)

func randomIndex(n int) (int, error) {
	choice, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(choice.Int64()), nil
}

// decide picks a piece uniformly among those with a candidate square, then one of its squares.
func decide(moves <-chan move) (move, bool, error) {
	byPiece := make(map[square][]move)
	for m := range moves {
		byPiece[m.From] = append(byPiece[m.From], m)
	}
	if len(byPiece) == 0 {
		return move{}, false, nil
	}
	starts := make([]square, 0, len(byPiece))
	for start := range byPiece {
		starts = append(starts, start)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i] < starts[j] })
	i, err := randomIndex(len(starts))
	if err != nil {
		return move{}, false, err
	}
	candidates := byPiece[starts[i]]
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].To < candidates[j].To })
	j, err := randomIndex(len(candidates))
	if err != nil {
		return move{}, false, err
	}
	return candidates[j], true, nil
}
