package handlers

import (
	"errors"
	"fmt"

	"github.com/gorilla/schema"

	"github.com/BrevinJohnston/BrevinJohnston.github.io/internal/command"
	"github.com/BrevinJohnston/BrevinJohnston.github.io/internal/controller"
)

var decoder = func() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec
}()

var ErrMixedParams = errors.New("pass either difficulty or rows, cols and mines")

// CreateNewGameDTO asks for a preset by name or for a custom board. With
// neither, the easy preset is used.
type CreateNewGameDTO struct {
	Difficulty string `schema:"difficulty"`
	Rows       *int   `schema:"rows"`
	Cols       *int   `schema:"cols"`
	Mines      *int   `schema:"mines"`
}

func ParseCreateNewGameDTO(src map[string][]string) (CreateNewGameDTO, error) {
	var dto CreateNewGameDTO
	err := decoder.Decode(&dto, src)
	return dto, err
}

// Command turns the request into the command that deals the board.
func (d CreateNewGameDTO) Command() (command.Command, error) {
	custom := d.Rows != nil || d.Cols != nil || d.Mines != nil
	switch {
	case custom && d.Difficulty != "":
		return command.Command{}, ErrMixedParams
	case custom:
		if d.Rows == nil || d.Cols == nil || d.Mines == nil {
			return command.Command{}, ErrMixedParams
		}
		return command.Command{
			Op:   command.New,
			Args: []int{*d.Rows, *d.Cols, *d.Mines},
		}, nil
	case d.Difficulty != "":
		return command.Command{Op: command.Difficulty, Name: d.Difficulty}, nil
	default:
		return command.Command{Op: command.Difficulty, Name: controller.Easy.Name}, nil
	}
}

type GameMove string

const (
	Open GameMove = "open"
	Flag GameMove = "flag"
)

var ErrBadMove = fmt.Errorf("move must be one of '%s', '%s'", Open, Flag)

type MoveDTO struct {
	Move GameMove `schema:"move,required"`
	Row  int      `schema:"row,required"`
	Col  int      `schema:"col,required"`
}

func ParseMoveDTO(src map[string][]string) (MoveDTO, error) {
	var dto MoveDTO
	err := decoder.Decode(&dto, src)
	return dto, err
}

func (d MoveDTO) Command() (command.Command, error) {
	switch d.Move {
	case Open:
		return command.Command{Op: command.Open, Args: []int{d.Row, d.Col}}, nil
	case Flag:
		return command.Command{Op: command.Flag, Args: []int{d.Row, d.Col}}, nil
	default:
		return command.Command{}, ErrBadMove
	}
}

type GameSessionDTO struct {
	GameSessionId string `json:"game_session_id"`
	CreatedAt     int64  `json:"created_at"`
	controller.View
}

type MoveResultDTO struct {
	Accepted bool            `json:"accepted"`
	View     controller.View `json:"view"`
}
