package main

import (
	"github.com/montanaflynn/stats"
	"gorm.io/gorm"
)

// Board board snapshot.
type Board struct {
	gorm.Model

	Board         grid `gorm:"<-:create;type:varchar;size:128;uniqueIndex;not null"`
	UpperMobility int
	LowerMobility int
	UpperMedian   float64
	LowerMedian   float64
}

type grid [8][8]byte

// square is a board cell written the way players type it: row*10 + column.
type square int

func at(row, col int) square {
	return square(row*10 + col)
}

func (s square) row() int {
	return int(s) / 10
}

func (s square) col() int {
	return int(s) % 10
}

func (s square) onBoard() bool {
	return s >= 0 && s.row() < 8 && s.col() < 8
}

func (board grid) pieceAt(s square) byte {
	if !s.onBoard() {
		return 0
	}
	return board[s.row()][s.col()]
}

func (board grid) emptyAt(row, col int) bool {
	return row >= 0 && row < 8 && col >= 0 && col < 8 && board[row][col] == empty
}

func (board *grid) change(from, to square) {
	r1, c1, r2, c2 := from.row(), from.col(), to.row(), to.col()
	board[r1][c1], board[r2][c2] = board[r2][c2], board[r1][c1]
}

func (board grid) contains(piece byte) bool {
	for _, row := range board {
		for _, p := range row {
			if p == piece {
				return true
			}
		}
	}
	return false
}

func (board grid) pieces(s side) []square {
	squares := make([]square, 0, 8)
	for r, row := range board {
		for c, p := range row {
			if sideOf(p) == s {
				squares = append(squares, at(r, c))
			}
		}
	}
	return squares
}

// mobility returns the candidate counts of every piece a side owns.
func (board grid) mobility(s side) []int {
	counts := make([]int, 0, 8)
	for _, start := range board.pieces(s) {
		counts = append(counts, len(board.available(start).squares()))
	}
	return counts
}

type mobilitySummary struct {
	Total  int
	Mean   float64
	Median float64
	Max    float64
}

func (board grid) mobilitySummary(s side) (mobilitySummary, error) {
	counts := board.mobility(s)
	if len(counts) == 0 {
		return mobilitySummary{}, nil
	}
	data := stats.LoadRawData(counts)
	total, err := stats.Sum(data)
	if err != nil {
		return mobilitySummary{}, err
	}
	mean, err := stats.Mean(data)
	if err != nil {
		return mobilitySummary{}, err
	}
	median, err := stats.Median(data)
	if err != nil {
		return mobilitySummary{}, err
	}
	max, err := stats.Max(data)
	if err != nil {
		return mobilitySummary{}, err
	}
	return mobilitySummary{Total: int(total), Mean: mean, Median: median, Max: max}, nil
}

func snapshot(state grid) (Board, error) {
	up, err := state.mobilitySummary(upper)
	if err != nil {
		return Board{}, err
	}
	low, err := state.mobilitySummary(lower)
	if err != nil {
		return Board{}, err
	}
	return Board{
		Board:         state,
		UpperMobility: up.Total,
		LowerMobility: low.Total,
		UpperMedian:   up.Median,
		LowerMedian:   low.Median,
	}, nil
}
