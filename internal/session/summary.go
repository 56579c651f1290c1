package session

// FurnitureSummary names a piece of furniture without revealing its note.
type FurnitureSummary struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

// RoomSummary is a room as the players see it on the board.
type RoomSummary struct {
	Code      int                `json:"code"`
	Name      string             `json:"name"`
	Locked    bool               `json:"locked"`
	Furniture []FurnitureSummary `json:"furniture"`
}

// Summary is the read-only view of a game.
type Summary struct {
	ID         string        `json:"id"`
	Seed       string        `json:"seed"`
	CluesFound int           `json:"cluesFound"`
	Rooms      []RoomSummary `json:"rooms"`
}

// summarize must be called with e.mu held.
func summarize(e *entry) Summary {
	rooms := e.game.Rooms()
	summary := Summary{
		ID:         e.id,
		Seed:       e.game.Seed(),
		CluesFound: e.game.CluesFound(),
		Rooms:      make([]RoomSummary, 0, len(rooms)),
	}
	for _, room := range rooms {
		rs := RoomSummary{
			Code:      room.Code,
			Name:      room.Name,
			Locked:    room.Locked,
			Furniture: make([]FurnitureSummary, 0, len(room.FurnitureCodes)),
		}
		for _, code := range room.FurnitureCodes {
			if f, ok := e.game.FurnitureByCode(code); ok {
				rs.Furniture = append(rs.Furniture, FurnitureSummary{Code: f.Code, Name: f.Name})
			}
		}
		summary.Rooms = append(summary.Rooms, rs)
	}
	return summary
}
