package main

import (
	"sync"

	"github.com/apex/log"
)

type step struct {
	dr, dc int
}

type ray struct {
	label string
	steps []step
	slide bool
}

var (
	horizontal = ray{label: "Horizontally", steps: []step{{0, -1}, {0, 1}}, slide: true}
	vertical   = ray{label: "Vertically", steps: []step{{-1, 0}, {1, 0}}, slide: true}
	diagonal   = ray{label: "Diagonally", steps: []step{{-1, 1}, {1, -1}, {1, 1}, {-1, -1}}, slide: true}
	jumps      = ray{steps: []step{{2, 1}, {2, -1}, {1, 2}, {-1, 2}, {-2, -1}, {-2, 1}, {1, -2}, {-1, -2}}}
)

var raysForKind = map[byte][]ray{
	rook:  {horizontal, vertical},
	horse: {jumps},
	camel: {diagonal},
	queen: {horizontal, vertical, diagonal},
}

type group struct {
	Label   string   `json:"label,omitempty"`
	Squares []square `json:"squares"`
}

type plays []group

func (p plays) squares() []square {
	var squares []square
	for _, g := range p {
		squares = append(squares, g.Squares...)
	}
	return squares
}

func (p plays) contains(s square) bool {
	for _, candidate := range p.squares() {
		if candidate == s {
			return true
		}
	}
	return false
}

func (board grid) scan(start square, r ray) []square {
	squares := make([]square, 0, 14)
	for _, st := range r.steps {
		row, col := start.row()+st.dr, start.col()+st.dc
		for board.emptyAt(row, col) {
			squares = append(squares, at(row, col))
			if !r.slide {
				break
			}
			row, col = row+st.dr, col+st.dc
		}
	}
	return squares
}

// available lists the empty squares the piece on start could be sent to, grouped by direction.
func (board grid) available(start square) plays {
	rays, ok := raysForKind[kind(board.pieceAt(start))]
	if !ok {
		return nil
	}
	result := make(plays, 0, len(rays))
	for _, r := range rays {
		result = append(result, group{Label: r.label, Squares: board.scan(start, r)})
	}
	return result
}

func (board grid) movesForPiece(wg *sync.WaitGroup, moves chan<- move, start square) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		piece := board.pieceAt(start)
		if kind(piece) == 0 {
			log.WithField("square", start.String()).Fatal("invalid piece")
		}
		for _, dest := range board.available(start).squares() {
			moves <- move{Piece: piece, From: start, To: dest}
		}
	}()
}

func (board grid) movesForBoard(s side) <-chan move {
	moves := make(chan move, 32)
	go func() {
		defer close(moves)
		var wg sync.WaitGroup
		for _, start := range board.pieces(s) {
			board.movesForPiece(&wg, moves, start)
		}
		wg.Wait()
	}()
	return moves
}
