package models

import (
	"fmt"
	"strings"
)

// Note is the bundle of hints hidden in a piece of furniture.
//
// The facets are independent: a note may both hold the money and ask about cards. Nil pointers and
// empty strings mean the facet is absent.
type Note struct {
	// Money marks the furniture that wins the game.
	Money bool
	// Ask requires the player to show Item and/or Person before the rest of the note is revealed.
	Ask    bool
	Item   *Card
	Person *Card
	// Clue is the number of clues left to find here.
	Clue     int
	Trapdoor bool
	// Secret is only shown once the player asks to view it.
	Secret string
	// NotIn names furniture that does not hold the money.
	NotIn *Furniture
	// LookIn names furniture that holds a clue.
	LookIn *Furniture
}

// String describes every facet of the note for the host. A nil note is "no note".
func (n *Note) String() string {
	if n == nil {
		return "no note"
	}
	var parts []string
	if n.Money {
		parts = append(parts, "MONEY")
	}
	if n.Trapdoor {
		parts = append(parts, "trapdoor")
	}
	if n.Ask {
		var cards []string
		if n.Item != nil {
			cards = append(cards, n.Item.Name)
		}
		if n.Person != nil {
			cards = append(cards, n.Person.Name)
		}
		parts = append(parts, "ask: "+strings.Join(cards, ", "))
	}
	if n.Clue > 0 {
		parts = append(parts, fmt.Sprintf("clues: %d", n.Clue))
	}
	if n.Secret != "" {
		parts = append(parts, "secret: "+n.Secret)
	}
	if n.LookIn != nil {
		parts = append(parts, "look in: "+n.LookIn.Name)
	}
	if n.NotIn != nil {
		parts = append(parts, "not in: "+n.NotIn.Name)
	}
	if len(parts) == 0 {
		return "empty note"
	}
	return strings.Join(parts, "; ")
}
