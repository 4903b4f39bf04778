package main

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/apex/log"
	uuid "github.com/satori/go.uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

type store struct {
	db *gorm.DB
}

func openStore(dbname string) (*store, error) {
	connStr := strings.Join([]string{"dbname", dbname}, "=")

	database, err := gorm.Open(postgres.Open(connStr), &gorm.Config{
		Logger:      logger.Default.LogMode(logger.Silent),
		QueryFields: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := database.AutoMigrate(&Board{}, &Game{}, &Play{}); err != nil {
		return nil, err
	}
	return &store{db: database}, nil
}

// Close close.
func (s *store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *store) makeBoard(state grid) (Board, error) {
	snap, err := snapshot(state)
	if err != nil {
		return Board{}, err
	}
	var board Board
	if err := s.db.Where(Board{Board: state}).Attrs(snap).FirstOrCreate(&board).Error; err != nil {
		return Board{}, err
	}
	return board, nil
}

func (s *store) makeGame(opponentType string, state grid) (*Game, error) {
	board, err := s.makeBoard(state)
	if err != nil {
		return nil, err
	}
	id := uuid.NewV4()
	game := Game{GameID: id, OpponentType: opponentType, BoardID: board.ID, ActiveSide: upper.String()}
	if err := s.db.Omit(clause.Associations).Create(&game).Error; err != nil {
		return nil, err
	}
	return s.getGame(id)
}

func (s *store) recordPlay(game *Game, play Play, state grid) error {
	board, err := s.makeBoard(state)
	if err != nil {
		return err
	}
	play.GameID = game.ID
	play.BoardID = board.ID
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&play).Error; err != nil {
			return err
		}
		game.Turn = play.Turn
		game.BoardID = board.ID
		game.Board = board
		game.ActiveSide = sideFromName(play.Side).other().String()
		return tx.Omit(clause.Associations).Save(game).Error
	})
}

func (s *store) endGame(game *Game, reason string) error {
	game.End = true
	game.EndReason = reason
	return s.db.Omit(clause.Associations).Save(game).Error
}

func (s *store) getGame(id uuid.UUID) (*Game, error) {
	var game Game
	if err := s.db.Preload(clause.Associations).First(&game, Game{GameID: id}).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *store) getGames() ([]Game, error) {
	var games []Game
	if err := s.db.Preload(clause.Associations).Order("id").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (s *store) getPlays(game *Game) ([]Play, error) {
	var plays []Play
	if err := s.db.Preload(clause.Associations).Where(Play{GameID: game.ID}).Order("turn").Find(&plays).Error; err != nil {
		return nil, err
	}
	return plays, nil
}

func idleError(message string, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return
	}
	if errors.Is(err, http.ErrServerClosed) {
		return
	}
	log.WithField("type", reflect.TypeOf(err)).WithError(err).Error(message)
	panic(err)
}
