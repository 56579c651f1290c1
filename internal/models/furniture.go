package models

import (
	"fmt"
	"strings"
)

// Furniture is a single piece of furniture that may hide a Note.
type Furniture struct {
	Name     string
	Code     int
	Filename string
	Note     *Note
}

// NewFurniture creates furniture without a note.
//
// Numbered duplicates such as "Dining Room Chair #1 [111]" share the sound asset of their base name.
func NewFurniture(name string, code int) *Furniture {
	base := name
	if i := strings.Index(base, "#"); i != -1 {
		base = strings.TrimSpace(base[:i])
	}
	return &Furniture{
		Name:     name,
		Code:     code,
		Filename: fmt.Sprintf("furniture/%s.wav", strings.ToLower(base)),
	}
}

func (f *Furniture) String() string {
	return fmt.Sprintf("%3d: %s", f.Code, f.Name)
}
