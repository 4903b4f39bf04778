package main

import (
	"database/sql/driver"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const separator = "------------------------------------------"

func (s square) String() string {
	return fmt.Sprintf("%d%d", s.row(), s.col())
}

func parseSquare(input string) (square, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errInvalidPosition, input)
	}
	s := square(n)
	if !s.onBoard() {
		return 0, fmt.Errorf("%w: %q", errInvalidPosition, input)
	}
	return s, nil
}

func (s square) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *square) UnmarshalJSON(bytes []byte) error {
	var text string
	if err := json.Unmarshal(bytes, &text); err != nil {
		return err
	}
	parsed, err := parseSquare(text)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

type move struct {
	Piece byte
	From  square
	To    square
}

func (m move) String() string {
	return fmt.Sprintf("%c%s-%s", m.Piece, m.From, m.To)
}

func (m move) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (board grid) display(w io.Writer) {
	fmt.Fprint(w, " ")
	for i := 0; i < 8; i++ {
		fmt.Fprintf(w, "    %d", i)
	}
	fmt.Fprintln(w)
	for k, row := range board {
		fmt.Fprintf(w, "  %s\n%d ", separator, k)
		for _, p := range row {
			fmt.Fprintf(w, "|| %c ", p)
		}
		fmt.Fprint(w, "|| \n")
	}
	fmt.Fprintf(w, "  %s\n", separator)
}

func (p plays) display(w io.Writer) {
	fmt.Fprintln(w, "Available are:")
	for _, g := range p {
		names := make([]string, 0, len(g.Squares))
		for _, s := range g.Squares {
			names = append(names, s.String())
		}
		if g.Label != "" {
			fmt.Fprintf(w, "%s: ", g.Label)
		}
		fmt.Fprintln(w, strings.Join(names, " , "))
	}
}

func (board grid) rows() []string {
	rows := make([]string, 0, 8)
	for _, row := range board {
		rows = append(rows, string(row[:]))
	}
	return rows
}

func parseRows(rows []string) (grid, error) {
	var board grid
	if len(rows) < 8 {
		return grid{}, fmt.Errorf("%w: %d rows", errCorruptBoard, len(rows))
	}
	for r := 0; r < 8; r++ {
		if len(rows[r]) < 8 {
			return grid{}, fmt.Errorf("%w: row %d has %d cells", errCorruptBoard, r, len(rows[r]))
		}
		for c := 0; c < 8; c++ {
			if !validGlyph(rows[r][c]) {
				return grid{}, fmt.Errorf("%w: glyph %q at %s", errCorruptBoard, rows[r][c], at(r, c))
			}
			board[r][c] = rows[r][c]
		}
	}
	return board, nil
}

func (board grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(board.rows())
}

func (board *grid) UnmarshalJSON(bytes []byte) error {
	var rows []string
	if err := json.Unmarshal(bytes, &rows); err != nil {
		return err
	}
	parsed, err := parseRows(rows)
	if err != nil {
		return err
	}
	*board = parsed
	return nil
}

func (board grid) Value() (driver.Value, error) {
	flat := make([]byte, 0, 64)
	for _, row := range board {
		flat = append(flat, row[:]...)
	}
	return hex.EncodeToString(flat), nil
}

func (board *grid) Scan(cell interface{}) error {
	var text string
	switch cell := cell.(type) {
	case string:
		text = cell
	case []byte:
		text = string(cell)
	default:
		return fmt.Errorf("invalid format scaning %#v", cell)
	}
	src, err := hex.DecodeString(text)
	if err != nil {
		return err
	}
	if len(src) != 64 {
		return fmt.Errorf("%w: %d cells", errCorruptBoard, len(src))
	}
	rows := make([]string, 0, 8)
	for r := 0; r < 8; r++ {
		rows = append(rows, string(src[r*8:r*8+8]))
	}
	parsed, err := parseRows(rows)
	if err != nil {
		return err
	}
	*board = parsed
	return nil
}
