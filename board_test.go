package main

import (
	"bytes"
	"encoding/json"
	"strings"

	. "gopkg.in/check.v1"
)

type BoardSuite struct{}

var _ = Suite(&BoardSuite{})

func (s *BoardSuite) TestInitialBoard(c *C) {
	c.Assert(initialBoard.pieceAt(at(0, 4)), Equals, byte('Q'))
	c.Assert(initialBoard.pieceAt(at(0, 7)), Equals, byte('R'))
	c.Assert(initialBoard.pieceAt(at(7, 0)), Equals, byte('r'))
	c.Assert(initialBoard.pieceAt(at(7, 3)), Equals, byte('q'))
	c.Assert(initialBoard.pieces(upper), DeepEquals, []square{4, 5, 6, 7})
	c.Assert(initialBoard.pieces(lower), DeepEquals, []square{70, 71, 72, 73})
	c.Assert(initialBoard.contains('H'), Equals, true)
	c.Assert(initialBoard.contains('k'), Equals, false)
}

func (s *BoardSuite) TestSides(c *C) {
	c.Assert(sideOf('R'), Equals, upper)
	c.Assert(sideOf('c'), Equals, lower)
	c.Assert(sideOf(empty), Equals, noSide)
	c.Assert(sideOf('K'), Equals, noSide)
	c.Assert(kind('H'), Equals, horse)
	c.Assert(upper.other(), Equals, lower)
	c.Assert(sideFromName("lower"), Equals, lower)
	c.Assert(sideFromName("purple"), Equals, noSide)
}

func (s *BoardSuite) TestChangeSwapsCells(c *C) {
	board := initialBoard
	board.change(at(0, 4), at(1, 4))
	c.Assert(board.pieceAt(at(0, 4)), Equals, empty)
	c.Assert(board.pieceAt(at(1, 4)), Equals, byte('Q'))

	board.change(at(1, 4), at(7, 3))
	c.Assert(board.pieceAt(at(1, 4)), Equals, byte('q'))
	c.Assert(board.pieceAt(at(7, 3)), Equals, byte('Q'))
	c.Assert(initialBoard.pieceAt(at(0, 4)), Equals, byte('Q'))
}

func (s *BoardSuite) TestParseSquare(c *C) {
	for input, expected := range map[string]square{"04": 4, "4": 4, "77": 77, " 13 ": 13, "70": 70} {
		got, err := parseSquare(input)
		c.Assert(err, IsNil)
		c.Assert(got, Equals, expected)
	}
	for _, input := range []string{"78", "80", "-1", "x", "", "100"} {
		_, err := parseSquare(input)
		c.Assert(err, ErrorMatches, "invalid position.*")
	}
	c.Assert(at(3, 5).String(), Equals, "35")
	c.Assert(square(6).String(), Equals, "06")
}

func (s *BoardSuite) TestDisplay(c *C) {
	var out bytes.Buffer
	initialBoard.display(&out)
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	c.Assert(lines, HasLen, 18)
	c.Assert(lines[0], Equals, "     0    1    2    3    4    5    6    7")
	c.Assert(lines[1], Equals, "  "+separator)
	c.Assert(lines[2], Equals, "0 ||   ||   ||   ||   || Q || C || H || R || ")
	c.Assert(lines[16], Equals, "7 || r || h || c || q ||   ||   ||   ||   || ")
	c.Assert(len(separator), Equals, 42)
}

func (s *BoardSuite) TestGridValueScan(c *C) {
	value, err := initialBoard.Value()
	c.Assert(err, IsNil)
	var board grid
	c.Assert(board.Scan(value), IsNil)
	c.Assert(board, Equals, initialBoard)
	c.Assert(board.Scan([]byte(value.(string))), IsNil)
	c.Assert(board.Scan(42), ErrorMatches, "invalid format.*")
	c.Assert(board.Scan("abcd"), ErrorMatches, "corrupt board.*")
}

func (s *BoardSuite) TestGridJSON(c *C) {
	buffer, err := json.Marshal(initialBoard)
	c.Assert(err, IsNil)
	var rows []string
	c.Assert(json.Unmarshal(buffer, &rows), IsNil)
	c.Assert(rows[0], Equals, "    QCHR")
	c.Assert(rows[7], Equals, "rhcq    ")

	var board grid
	c.Assert(json.Unmarshal(buffer, &board), IsNil)
	c.Assert(board, Equals, initialBoard)
	c.Assert(json.Unmarshal([]byte(`["    QCHK"]`), &board), ErrorMatches, "corrupt board.*")
}

func (s *BoardSuite) TestMobilitySummary(c *C) {
	summary, err := initialBoard.mobilitySummary(upper)
	c.Assert(err, IsNil)
	c.Assert(summary.Total, Equals, 35)
	c.Assert(summary.Mean, Equals, 8.75)
	c.Assert(summary.Median, Equals, 7.0)
	c.Assert(summary.Max, Equals, 18.0)

	var bare grid
	for r := range bare {
		for col := range bare[r] {
			bare[r][col] = empty
		}
	}
	summary, err = bare.mobilitySummary(lower)
	c.Assert(err, IsNil)
	c.Assert(summary, Equals, mobilitySummary{})

	board, err := snapshot(initialBoard)
	c.Assert(err, IsNil)
	c.Assert(board.UpperMobility, Equals, 35)
	c.Assert(board.LowerMobility, Equals, 35)
	c.Assert(board.LowerMedian, Equals, 7.0)
}
