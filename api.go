package main

import (
	"errors"
	"net/http"
	"path"
	"sort"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"
)

type gameReader interface {
	getGames() ([]Game, error)
	getGame(id uuid.UUID) (*Game, error)
	getPlays(game *Game) ([]Play, error)
}

type gameResponse struct {
	Href string
	Game Game
}

type gamesResponse struct {
	Href  string
	Games []Game
}

type playsResponse struct {
	Href  string
	Plays []Play
}

type availableResponse struct {
	Href   string
	Square square
	Piece  string
	Groups plays
}

type movesResponse struct {
	Href  string
	Side  string
	Moves []move
}

func errToHTTP(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.ErrNotFound
	}
	return err
}

func requestID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.FromString(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return id, nil
}

func requestGame(c echo.Context, games gameReader) (*Game, error) {
	id, err := requestID(c)
	if err != nil {
		return nil, err
	}
	return games.getGame(id)
}

func requestSquare(c echo.Context) (square, error) {
	s, err := parseSquare(c.Param("square"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return s, nil
}

func gameHref(game *Game) string {
	return path.Join("/games", game.GameID.String())
}

func apiHandler(games gameReader) *echo.Echo {
	e := echo.New()

	e.GET("/games", func(c echo.Context) error {
		list, err := games.getGames()
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, gamesResponse{Href: "/games", Games: list})
	})
	e.GET("/games/:id", func(c echo.Context) error {
		game, err := requestGame(c, games)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, gameResponse{Href: gameHref(game), Game: *game})
	})
	e.GET("/games/:id/plays", func(c echo.Context) error {
		game, err := requestGame(c, games)
		if err != nil {
			return errToHTTP(err)
		}
		list, err := games.getPlays(game)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, playsResponse{Href: path.Join(gameHref(game), "plays"), Plays: list})
	})
	e.GET("/games/:id/moves", func(c echo.Context) error {
		game, err := requestGame(c, games)
		if err != nil {
			return errToHTTP(err)
		}
		moves := make([]move, 0, 32)
		for m := range game.Board.Board.movesForBoard(sideFromName(game.ActiveSide)) {
			moves = append(moves, m)
		}
		sort.Slice(moves, func(i, j int) bool {
			if moves[i].From != moves[j].From {
				return moves[i].From < moves[j].From
			}
			return moves[i].To < moves[j].To
		})
		return c.JSON(http.StatusOK, movesResponse{Href: path.Join(gameHref(game), "moves"), Side: game.ActiveSide, Moves: moves})
	})
	e.GET("/games/:id/available/:square", func(c echo.Context) error {
		game, err := requestGame(c, games)
		if err != nil {
			return errToHTTP(err)
		}
		start, err := requestSquare(c)
		if err != nil {
			return err
		}
		piece := game.Board.Board.pieceAt(start)
		if kind(piece) == 0 {
			return echo.NewHTTPError(http.StatusNotAcceptable, "no piece on square")
		}
		return c.JSON(http.StatusOK, availableResponse{
			Href:   path.Join(gameHref(game), "available", start.String()),
			Square: start,
			Piece:  string(piece),
			Groups: game.Board.Board.available(start),
		})
	})

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Gzip())
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())

	return e
}
