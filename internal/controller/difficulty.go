package controller

import (
	"fmt"
	"slices"
	"strings"
)

type Difficulty struct {
	Name  string `json:"name"`
	Rows  int    `json:"rows"`
	Cols  int    `json:"cols"`
	Mines int    `json:"mines"`
}

const Custom = "custom"

var (
	Easy   = Difficulty{Name: "easy", Rows: 8, Cols: 10, Mines: 10}
	Medium = Difficulty{Name: "medium", Rows: 14, Cols: 18, Mines: 40}
)

var difficulties = []Difficulty{Easy, Medium}

var ErrUnknownDifficulty error

func init() {
	names := make([]string, len(difficulties))
	for i, d := range difficulties {
		names[i] = "'" + d.Name + "'"
	}
	ErrUnknownDifficulty = fmt.Errorf(
		"difficulty must be one of %s", strings.Join(names, ", "),
	)
}

func Difficulties() []Difficulty {
	return slices.Clone(difficulties)
}

func LookupDifficulty(name string) (Difficulty, error) {
	for _, d := range difficulties {
		if strings.EqualFold(d.Name, name) {
			return d, nil
		}
	}
	return Difficulty{}, ErrUnknownDifficulty
}
