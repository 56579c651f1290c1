package models

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Room holds the codes of the furniture placed in it.
type Room struct {
	Name           string
	Code           int
	FurnitureCodes []int
	Locked         bool
	Filename       string
}

// NewRoom creates an unlocked room. furnitureCodes is copied.
func NewRoom(name string, furnitureCodes []int, code int) *Room {
	return &Room{
		Name:           name,
		Code:           code,
		FurnitureCodes: slices.Clone(furnitureCodes),
		Filename:       fmt.Sprintf("rooms/%s.wav", strings.ToLower(name)),
	}
}

// ContainsFurniture reports whether the furniture with furnitureCode is in the room.
func (r *Room) ContainsFurniture(furnitureCode int) bool {
	return slices.Contains(r.FurnitureCodes, furnitureCode)
}

func (r *Room) String() string {
	codes := make([]string, len(r.FurnitureCodes))
	for i, code := range r.FurnitureCodes {
		codes[i] = strconv.Itoa(code)
	}
	locked := ""
	if r.Locked {
		locked = " [LOCKED]"
	}
	return fmt.Sprintf("%2d: %s - Contains: %s%s", r.Code, r.Name, strings.Join(codes, ", "), locked)
}
