package main

const empty byte = ' '

const (
	rook   byte = 'r'
	horse  byte = 'h'
	camel  byte = 'c'
	queen  byte = 'q'
	caseUp byte = 'a' - 'A'
)

type side uint8

const (
	noSide side = iota
	upper
	lower
)

var initialBoard = grid{
	{empty, empty, empty, empty, 'Q', 'C', 'H', 'R'},
	{empty, empty, empty, empty, empty, empty, empty, empty},
	{empty, empty, empty, empty, empty, empty, empty, empty},
	{empty, empty, empty, empty, empty, empty, empty, empty},
	{empty, empty, empty, empty, empty, empty, empty, empty},
	{empty, empty, empty, empty, empty, empty, empty, empty},
	{empty, empty, empty, empty, empty, empty, empty, empty},
	{'r', 'h', 'c', 'q', empty, empty, empty, empty},
}

var kindNames = map[byte]string{
	rook:  "rook",
	horse: "horse",
	camel: "camel",
	queen: "queen",
}

var sideNames = map[side]string{
	noSide: "none",
	upper:  "upper",
	lower:  "lower",
}

var sideTitles = map[side]string{
	upper: "PLAYER 1 - Big Case",
	lower: "PLAYER 2 - Small Case",
}

func (s side) String() string {
	return sideNames[s]
}

func (s side) other() side {
	switch s {
	case upper:
		return lower
	case lower:
		return upper
	}
	return noSide
}

// kind folds a glyph to its lowercase piece kind, or 0 for anything that is not a piece.
func kind(glyph byte) byte {
	if glyph >= 'A' && glyph <= 'Z' {
		glyph += caseUp
	}
	if _, ok := kindNames[glyph]; ok {
		return glyph
	}
	return 0
}

func sideOf(glyph byte) side {
	if kind(glyph) == 0 {
		return noSide
	}
	if glyph >= 'A' && glyph <= 'Z' {
		return upper
	}
	return lower
}

func validGlyph(glyph byte) bool {
	return glyph == empty || kind(glyph) != 0
}

func sideFromName(name string) side {
	for s, n := range sideNames {
		if n == name {
			return s
		}
	}
	return noSide
}
