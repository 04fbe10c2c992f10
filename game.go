package main

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/maplefeline/nchess/rules"
	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Game game. Its status is computed from Board and Turn when asked for.
type Game struct {
	gorm.Model

	GameID    uuid.UUID   `gorm:"<-:create;type:varchar;size:36;uniqueIndex"`
	Board     rules.Board `gorm:"type:varchar;size:128;not null"`
	Turn      rules.Color
	MoveCount int
	Plays     []Play `gorm:"foreignKey:GameID"`
}

// Play is one accepted move of a game.
type Play struct {
	gorm.Model

	GameID  uint `gorm:"index"`
	Ply     int
	Move    string `gorm:"type:varchar;size:4"`
	Piece   rules.Piece
	Capture rules.Piece
}

func makeGame(start rules.Position) (*Game, error) {
	id := uuid.NewV4()
	if err := db.Create(&Game{GameID: id, Board: start.Board, Turn: start.Turn}).Error; err != nil {
		return nil, err
	}
	return getGame(id)
}

func getGame(id uuid.UUID) (*Game, error) {
	var game Game
	if err := db.Preload("Plays", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("ply")
	}).First(&game, Game{GameID: id}).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

func getGames() ([]Game, error) {
	var games []Game
	if err := db.Order("updated_at desc").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func gameIdle(retention time.Duration) error {
	cutoff := time.Now().Add(-retention)
	return db.Transaction(func(tx *gorm.DB) error {
		idle := tx.Model(&Game{}).Select("id").Where("updated_at < ?", cutoff)
		if err := tx.Where("game_id IN (?)", idle).Delete(&Play{}).Error; err != nil {
			return err
		}
		return tx.Where("updated_at < ?", cutoff).Delete(&Game{}).Error
	})
}

func (game Game) position() rules.Position {
	return rules.Position{Board: game.Board, Turn: game.Turn}
}

// play accepts m for the side to move and records it.
func (game *Game) play(m rules.Move) error {
	current := game.position()
	status, err := rules.Status(current)
	if err != nil {
		return err
	}
	if status.Over() {
		return echo.NewHTTPError(http.StatusBadRequest, "game is over")
	}
	next, err := current.Play(m)
	if err != nil {
		return err
	}
	record := Play{
		GameID:  game.ID,
		Ply:     game.MoveCount + 1,
		Move:    m.String(),
		Piece:   current.Board[m.From],
		Capture: current.Board[m.To],
	}
	updated := *game
	updated.Board = next.Board
	updated.Turn = next.Turn
	updated.MoveCount = record.Ply
	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(&updated).Error
	}); err != nil {
		return err
	}
	updated.Plays = append(game.Plays[:len(game.Plays):len(game.Plays)], record)
	*game = updated
	return nil
}
