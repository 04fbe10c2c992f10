package main

import (
	"errors"
	"net/http"
	"path"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/maplefeline/nchess/rules"
	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"
)

type playRequest struct {
	Move *rules.Move
}

type positionRequest struct {
	FEN string
}

type gameView struct {
	GameID    uuid.UUID
	FEN       string
	Turn      rules.Color
	Status    rules.GameStatus
	MoveCount int
	Plays     []string
}

type gameResponse struct {
	Href string
	Game gameView
}

type gamesResponse struct {
	Href  string
	Games []gameView
}

type movesResponse struct {
	Href  string
	Moves map[rules.Square][]rules.Square
}

type squareResponse struct {
	Href   string
	Square rules.Square
	Moves  []rules.Square
}

type positionResponse struct {
	Href   string
	FEN    string
	Turn   rules.Color
	Status rules.GameStatus
	Moves  map[rules.Square][]rules.Square
}

type mobilityResponse struct {
	Href     string
	Mobility mobility
}

func errToHTTP(err error) error {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return echo.ErrNotFound
	case errors.Is(err, rules.ErrNotYourPiece):
		return echo.NewHTTPError(http.StatusNotAcceptable, "not your turn")
	case errors.Is(err, errNoMoves):
		return echo.NewHTTPError(http.StatusNotAcceptable, err.Error())
	case errors.Is(err, rules.ErrIllegalMove),
		errors.Is(err, rules.ErrEmptySquare),
		errors.Is(err, rules.ErrOutOfBoard),
		errors.Is(err, rules.ErrNoKingFound):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
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

func requestGame(c echo.Context) (*Game, error) {
	id, err := requestID(c)
	if err != nil {
		return nil, err
	}
	return getGame(id)
}

func gameHref(game *Game) string {
	return path.Join("/games", game.GameID.String())
}

func viewGame(game *Game) (gameView, error) {
	status, err := rules.Status(game.position())
	if err != nil {
		return gameView{}, err
	}
	plays := make([]string, 0, len(game.Plays))
	for _, play := range game.Plays {
		plays = append(plays, play.Move)
	}
	return gameView{
		GameID:    game.GameID,
		FEN:       game.position().FEN(),
		Turn:      game.Turn,
		Status:    status,
		MoveCount: game.MoveCount,
		Plays:     plays,
	}, nil
}

func responseGame(game *Game) (gameResponse, error) {
	view, err := viewGame(game)
	return gameResponse{Game: view, Href: gameHref(game)}, err
}

func responseGames(games []Game) (gamesResponse, error) {
	views := make([]gameView, 0, len(games))
	for i := range games {
		view, err := viewGame(&games[i])
		if err != nil {
			return gamesResponse{}, err
		}
		views = append(views, view)
	}
	return gamesResponse{Games: views, Href: "/games"}, nil
}

func groupMoves(p rules.Position) (map[rules.Square][]rules.Square, error) {
	moves, err := rules.AllLegalMoves(p)
	if err != nil {
		return nil, err
	}
	grouped := make(map[rules.Square][]rules.Square)
	for _, m := range moves {
		grouped[m.From] = append(grouped[m.From], m.To)
	}
	return grouped, nil
}

func analyzePosition(p rules.Position) (positionResponse, error) {
	status, err := rules.Status(p)
	if err != nil {
		return positionResponse{}, err
	}
	moves, err := groupMoves(p)
	if err != nil {
		return positionResponse{}, err
	}
	return positionResponse{Href: "/positions", FEN: p.FEN(), Turn: p.Turn, Status: status, Moves: moves}, nil
}

func apiHandler() *echo.Echo {
	e := echo.New()

	e.POST("/positions", func(c echo.Context) error {
		var request positionRequest
		if err := c.Bind(&request); err != nil {
			return err
		}
		if request.FEN == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "position must provide FEN")
		}
		p, err := rules.FromFEN(request.FEN)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		response, err := analyzePosition(p)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, response)
	})
	e.GET("/games", func(c echo.Context) error {
		games, err := getGames()
		if err != nil {
			return errToHTTP(err)
		}
		response, err := responseGames(games)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, response)
	})
	e.POST("/games", func(c echo.Context) error {
		var request positionRequest
		if err := c.Bind(&request); err != nil {
			return err
		}
		start := rules.NewGame()
		if request.FEN != "" {
			p, err := rules.FromFEN(request.FEN)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}
			start = p
		}
		game, err := makeGame(start)
		if err != nil {
			return errToHTTP(err)
		}
		response, err := responseGame(game)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusCreated, response)
	})
	e.GET("/games/:id", func(c echo.Context) error {
		game, err := requestGame(c)
		if err != nil {
			return errToHTTP(err)
		}
		response, err := responseGame(game)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, response)
	})
	e.PUT("/games/:id", func(c echo.Context) error {
		game, err := requestGame(c)
		if err != nil {
			return errToHTTP(err)
		}
		var request playRequest
		if err := c.Bind(&request); err != nil {
			return err
		}
		if request.Move == nil {
			return echo.NewHTTPError(http.StatusNotAcceptable, "player must provide move")
		}
		if err := game.play(*request.Move); err != nil {
			return errToHTTP(err)
		}
		response, err := responseGame(game)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, response)
	})
	e.POST("/games/:id/agent", func(c echo.Context) error {
		game, err := requestGame(c)
		if err != nil {
			return errToHTTP(err)
		}
		m, err := decide(game.position())
		if err != nil {
			return errToHTTP(err)
		}
		if err := game.play(m); err != nil {
			return errToHTTP(err)
		}
		response, err := responseGame(game)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, response)
	})
	e.GET("/games/:id/moves", func(c echo.Context) error {
		game, err := requestGame(c)
		if err != nil {
			return errToHTTP(err)
		}
		moves, err := groupMoves(game.position())
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, movesResponse{Href: path.Join(gameHref(game), "moves"), Moves: moves})
	})
	e.GET("/games/:id/moves/:square", func(c echo.Context) error {
		game, err := requestGame(c)
		if err != nil {
			return errToHTTP(err)
		}
		sq, err := rules.ParseSquare(c.Param("square"))
		if err != nil {
			return errToHTTP(err)
		}
		moves, err := rules.LegalMoves(game.position(), sq)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, squareResponse{Href: path.Join(gameHref(game), "moves", sq.String()), Square: sq, Moves: moves})
	})
	e.GET("/games/:id/stats", func(c echo.Context) error {
		game, err := requestGame(c)
		if err != nil {
			return errToHTTP(err)
		}
		m, err := measureMobility(game.position())
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, mobilityResponse{Href: path.Join(gameHref(game), "stats"), Mobility: m})
	})

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Gzip())
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())

	return e
}
