package models

// EntranceRoomCode is the room players start from. It is never locked.
const EntranceRoomCode = 11

// MaxFurniturePerRoom bounds how many pieces a room holds after furnishing.
const MaxFurniturePerRoom = 4

// RoomTemplate is a room name together with the furniture that thematically belongs in it.
type RoomTemplate struct {
	Name           string
	FurnitureCodes []int
}

// RoomCodes are the codes printed on the board. They are assigned to rooms at random.
func RoomCodes() []int {
	return []int{11, 12, 13, 14, 21, 22, 23, 24, 31}
}

// RoomTemplates returns the thematic room table.
func RoomTemplates() []RoomTemplate {
	return []RoomTemplate{
		{Name: "Living Room", FurnitureCodes: []int{121, 122}},       // Sofa, Coffee Table
		{Name: "Bed Room", FurnitureCodes: []int{123, 124}},          // Bed, Dresser
		{Name: "Kitchen", FurnitureCodes: []int{132, 133, 134, 141}}, // Refrigerator, Sink, Oven, Kitchen Table
		{Name: "Music Room", FurnitureCodes: []int{213}},             // Piano
		{Name: "Game Room", FurnitureCodes: []int{142, 143}},         // Pool Table, Pinball Machines
		{Name: "Study", FurnitureCodes: []int{131}},                  // Small Bookcase
		{Name: "Library", FurnitureCodes: []int{144}},                // Large Bookcase
		{Name: "Dining Room", FurnitureCodes: []int{111, 112, 113}},  // Chairs, Dining Room Table
		{Name: "Gym", FurnitureCodes: []int{211, 212}},               // Whirlpool, Treadmill
	}
}

// ItemCards returns the item card pool.
func ItemCards() []Card {
	return []Card{
		NewCard("Tape"),
		NewCard("Letter"),
		NewCard("Photos"),
		NewCard("Map"),
	}
}

// PeopleCards returns the people card pool.
func PeopleCards() []Card {
	return []Card{
		NewCard("Cook"),
		NewCard("Chauffeur"),
		NewCard("Maid"),
		NewCard("Butler"),
	}
}

// FurnitureCatalog returns every piece of furniture in the game, ordered by code. There are 35 pieces:
// 26 get a note and the other 9 stay empty.
func FurnitureCatalog() []*Furniture {
	return []*Furniture{
		NewFurniture("Dining Room Chair #1 [111]", 111),
		NewFurniture("Dining Room Chair #2 [112]", 112),
		NewFurniture("Dining Room Table", 113),
		NewFurniture("China Cabinet", 114),
		NewFurniture("Sofa", 121),
		NewFurniture("Coffee Table", 122),
		NewFurniture("Bed", 123),
		NewFurniture("Dresser", 124),
		NewFurniture("Small Bookcase", 131),
		NewFurniture("Refrigerator", 132),
		NewFurniture("Sink", 133),
		NewFurniture("Oven", 134),
		NewFurniture("Kitchen Table", 141),
		NewFurniture("Pool Table", 142),
		NewFurniture("Pinball Machines", 143),
		NewFurniture("Large Bookcase", 144),
		NewFurniture("Whirlpool", 211),
		NewFurniture("Treadmill", 212),
		NewFurniture("Piano", 213),
		NewFurniture("Telescope", 214),
		NewFurniture("Clock", 221),
		NewFurniture("Computer", 222),
		NewFurniture("Juke Box", 223),
		NewFurniture("Rug", 224),
		NewFurniture("Fireplace", 231),
		NewFurniture("Knight", 232),
		NewFurniture("Television", 233),
		NewFurniture("Fish Tank", 234),
		NewFurniture("Lamp", 241),
		NewFurniture("Planter", 242),
		NewFurniture("Easel", 243),
		NewFurniture("Black Armchair #1 [244]", 244),
		NewFurniture("Black Armchair #2 [311]", 311),
		NewFurniture("White Armchair #1 [312]", 312),
		NewFurniture("White Armchair #2 [313]", 313),
	}
}
