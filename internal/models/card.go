package models

import (
	"fmt"
	"strings"
)

// Card is a physical item or person card held by a player.
// The engine challenges players about cards before revealing some notes.
type Card struct {
	Name     string
	Filename string
}

// NewCard creates a card and derives its sound asset from the name.
func NewCard(name string) Card {
	return Card{
		Name:     name,
		Filename: fmt.Sprintf("items/%s.wav", strings.ToLower(name)),
	}
}

func (c Card) String() string {
	return c.Name
}
