package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/apex/log"
	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"
)

// Game game.
type Game struct {
	gorm.Model

	GameID       uuid.UUID `gorm:"<-:create;type:varchar;size:36;uniqueIndex"`
	OpponentType string
	BoardID      uint
	Board        Board
	Turn         int
	ActiveSide   string
	End          bool
	EndReason    string
}

// Play one applied move.
type Play struct {
	gorm.Model

	GameID    uint `gorm:"index" json:"-"`
	Turn      int
	Side      string
	AgentType string
	Piece     string
	From      square
	To        square
	BoardID   uint
	Board     Board
}

type gameRecorder interface {
	makeGame(opponentType string, state grid) (*Game, error)
	recordPlay(game *Game, play Play, state grid) error
	endGame(game *Game, reason string) error
}

const (
	agentUser  = "user"
	agentAgent = "agent"
)

var (
	errSaved = errors.New("game saved")
	errQuit  = errors.New("quit")
)

const clearScreen = "\033[H\033[2J"

type session struct {
	cfg      Config
	in       *bufio.Scanner
	out      io.Writer
	board    grid
	turn     int
	opponent string
	recorder gameRecorder
	game     *Game
}

func newSession(cfg Config, in io.Reader, out io.Writer, recorder gameRecorder) *session {
	return &session{
		cfg:      cfg,
		in:       bufio.NewScanner(in),
		out:      out,
		board:    initialBoard,
		opponent: agentUser,
		recorder: recorder,
	}
}

// play runs a whole console game; running out of input ends it quietly.
func play(cfg Config, in io.Reader, out io.Writer, recorder gameRecorder) error {
	s := newSession(cfg, in, out, recorder)
	err := s.setup()
	if err == nil {
		err = s.run()
	}
	if errors.Is(err, io.EOF) || errors.Is(err, errQuit) || errors.Is(err, errSaved) {
		return s.finish(err)
	}
	return err
}

func (s *session) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(s.in.Text(), "\r"), nil
}

// readChoice reads a 0/1 style answer; anything unparsable counts as fallback.
func (s *session) readChoice(fallback int) (int, error) {
	line, err := s.readLine()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return fallback, nil
	}
	return n, nil
}

func (s *session) setup() error {
	fmt.Fprint(s.out, "\n\tWELCOME TO CHESS GAME")
	switch s.cfg.Opponent {
	case opponentIA:
		s.opponent = agentAgent
	case opponentPlayer:
		s.opponent = agentUser
	default:
		fmt.Fprint(s.out, "\n\n\t Play with IA or Player\n\n\t Your choice :( 0 = IA , 1 = Player )")
		vs, err := s.readChoice(1)
		if err != nil {
			return err
		}
		if vs == 0 {
			s.opponent = agentAgent
		}
	}
	load := s.cfg.Load == answerYes
	if s.cfg.Load == "" {
		fmt.Fprint(s.out, "\n\n\t Load your previous game ?\n\n\t Your choice :(0 = No , 1 = Yes )")
		answer, err := s.readChoice(0)
		if err != nil {
			return err
		}
		load = answer == 1
	}
	fmt.Fprintln(s.out)
	if load {
		if err := s.board.load(s.cfg.SaveFile); err != nil {
			s.reportFileError(err)
		} else {
			fmt.Fprintln(s.out, "Successfully loaded.")
		}
	}
	if s.recorder != nil {
		game, err := s.recorder.makeGame(s.opponent, s.board)
		if err != nil {
			return fmt.Errorf("record game: %w", err)
		}
		s.game = game
	}
	log.WithField("opponent", s.opponent).WithField("loaded", load).Info("game started")
	return nil
}

func (s *session) reportFileError(err error) {
	if errors.Is(err, errOpenSave) {
		fmt.Fprintln(s.out, "Error when opening the file.")
	} else {
		fmt.Fprintln(s.out, "Error when reading the file.")
	}
	log.WithError(err).WithField("path", s.cfg.SaveFile).Error("save file")
}

func (s *session) run() error {
	for {
		s.turn++
		if s.cfg.ClearScreen {
			fmt.Fprint(s.out, clearScreen)
		}
		s.board.display(s.out)
		active := lower
		if s.turn%2 == 1 {
			active = upper
		}
		if err := s.playRound(active); err != nil {
			return err
		}
		if s.cfg.MaxTurns > 0 && s.turn >= s.cfg.MaxTurns {
			fmt.Fprintln(s.out, "\nTurn limit reached.")
			return errQuit
		}
		fmt.Fprint(s.out, " \n\nPress Enter To Continue ! \n\n ")
		line, err := s.readLine()
		if err != nil {
			return err
		}
		if line != "" {
			return errQuit
		}
	}
}

func (s *session) agentType(active side) string {
	if active == lower {
		return s.opponent
	}
	return agentUser
}

func (s *session) playRound(active side) error {
	agentType := s.agentType(active)
	var m move
	var ok bool
	var err error
	if agentType == agentUser {
		m, err = s.userMove(active)
		ok = err == nil
	} else {
		m, ok, err = s.agentMove(active)
	}
	if err != nil {
		return err
	}
	if !ok {
		log.WithField("side", active.String()).Info("no moves available, turn passes")
		return nil
	}
	s.board.change(m.From, m.To)
	if s.game != nil {
		p := Play{Turn: s.turn, Side: active.String(), AgentType: agentType, Piece: string(m.Piece), From: m.From, To: m.To}
		if err := s.recorder.recordPlay(s.game, p, s.board); err != nil {
			return fmt.Errorf("record play: %w", err)
		}
	}
	if active == upper && agentType == agentUser {
		return s.offerSave()
	}
	return nil
}

func (s *session) userMove(active side) (move, error) {
	fmt.Fprintf(s.out, "\n%s\n", sideTitles[active])
	var from square
	for {
		fmt.Fprint(s.out, "\nEnter Position of Element to change ( RC ): ")
		line, err := s.readLine()
		if err != nil {
			return move{}, err
		}
		from, err = parseSquare(line)
		if err == nil && sideOf(s.board.pieceAt(from)) == active {
			break
		}
		fmt.Fprint(s.out, "Invalid Position ! ")
	}
	s.board.available(from).display(s.out)
	for {
		fmt.Fprint(s.out, "\nEnter Position of Place to Send ( RC ): ")
		line, err := s.readLine()
		if err != nil {
			return move{}, err
		}
		to, err := parseSquare(line)
		if err == nil {
			return move{Piece: s.board.pieceAt(from), From: from, To: to}, nil
		}
		fmt.Fprint(s.out, "Invalid Position ! ")
	}
}

func (s *session) agentMove(active side) (move, bool, error) {
	fmt.Fprintf(s.out, "\nIA - %s\n", strings.TrimPrefix(sideTitles[active], "PLAYER 2 - "))
	m, ok, err := decide(s.board.movesForBoard(active))
	if err != nil || !ok {
		return move{}, ok, err
	}
	s.board.available(m.From).display(s.out)
	fmt.Fprintf(s.out, "\nIA sends %s\n", m)
	log.WithField("move", m.String()).WithField("turn", s.turn).Debug("random move")
	return m, true, nil
}

func (s *session) offerSave() error {
	fmt.Fprint(s.out, "\n\nSave your game ?\n\nYour choice :( 0 = No , 1 = Yes)")
	answer, err := s.readChoice(0)
	if err != nil {
		return err
	}
	if answer != 1 {
		return nil
	}
	if err := s.board.save(s.cfg.SaveFile); err != nil {
		s.reportFileError(err)
		return nil
	}
	fmt.Fprintln(s.out, "\nSuccessfully saved.")
	return errSaved
}

func (s *session) finish(cause error) error {
	reason := "quit"
	switch {
	case errors.Is(cause, errSaved):
		reason = "saved"
	case errors.Is(cause, io.EOF):
		reason = "end of input"
	case s.cfg.MaxTurns > 0 && s.turn >= s.cfg.MaxTurns:
		reason = "turn limit"
	}
	entry := log.WithField("turns", s.turn).WithField("reason", reason)
	for _, sd := range []side{upper, lower} {
		summary, err := s.board.mobilitySummary(sd)
		if err != nil {
			return err
		}
		entry = entry.WithField(sd.String()+"_mobility", summary.Total).
			WithField(sd.String()+"_mobility_mean", summary.Mean)
	}
	entry.Info("game over")
	if s.game != nil {
		return s.recorder.endGame(s.game, reason)
	}
	return nil
}
