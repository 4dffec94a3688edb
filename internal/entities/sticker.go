// Package entities contains core business entities.
package entities

import "fmt"

// Sticker is a catalog entry identified by its album number.
type Sticker struct {
	ID     int64
	Number int64
	Name   string
	Team   string
}

// NewSticker validates raw input and builds a Sticker.
func NewSticker(number int64, name, team string) (*Sticker, error) {
	switch {
	case number == 0:
		return nil, fmt.Errorf("%w: sticker number is required", ErrInvalidParam)
	case name == "":
		return nil, fmt.Errorf("%w: sticker name is required", ErrInvalidParam)
	case team == "":
		return nil, fmt.Errorf("%w: sticker team is required", ErrInvalidParam)
	}

	return &Sticker{Number: number, Name: name, Team: team}, nil
}
