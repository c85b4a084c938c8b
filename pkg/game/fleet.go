package game

import (
	"errors"
	"fmt"
	"math/rand"
)

// placementAttempts bounds the random retries per ship before placement
// is declared failed.
const placementAttempts = 100

var ErrPlacementFailed = errors.New("fleet placement failed")

type ShipClass struct {
	Name   string
	Length int
}

//StandardCatalog lists the classic five-ship fleet, largest first.
var StandardCatalog = []ShipClass{
	{Name: "Carrier", Length: 5},
	{Name: "Battleship", Length: 4},
	{Name: "Cruiser", Length: 3},
	{Name: "Submarine", Length: 3},
	{Name: "Destroyer", Length: 2},
}

type PlacedShip struct {
	Name   string
	Length int
	Cells  map[Coordinate]struct{}
}

//SunkBy reports whether every cell of the ship appears in shots.
func (s *PlacedShip) SunkBy(shots map[Coordinate]bool) bool {
	for c := range s.Cells {
		if !shots[c] {
			return false
		}
	}
	return true
}

// Fleet maps ship name to its placed ship. Each peer owns exactly one
// fleet describing its own pieces.
type Fleet map[string]*PlacedShip

//ShipAt returns the ship occupying c, or nil.
func (f Fleet) ShipAt(c Coordinate) *PlacedShip {
	for _, s := range f {
		if _, ok := s.Cells[c]; ok {
			return s
		}
	}
	return nil
}

//PlaceShipAt places a ship of the given class with its anchor at c,
//running right when horizontal or down when vertical. It returns an
//error if any cell would fall out of bounds or overlap a placed ship.
func (g *Game) PlaceShipAt(class ShipClass, c Coordinate, horizontal bool) error {
	cells := make(map[Coordinate]struct{}, class.Length)
	for i := 0; i < class.Length; i++ {
		cell := c
		if horizontal {
			cell.Col += i
		} else {
			cell.Row += i
		}
		if !g.board.InBounds(cell) {
			return errors.New("ship goes out of bounds")
		}
		if g.fleet.ShipAt(cell) != nil {
			return errors.New("some of the fields are already taken")
		}
		cells[cell] = struct{}{}
	}

	for cell := range cells {
		g.board.Mark(cell, Ship)
	}
	g.fleet[class.Name] = &PlacedShip{
		Name:   class.Name,
		Length: class.Length,
		Cells:  cells,
	}
	return nil
}

//PlaceFleet randomly places every ship of the game's catalog. Orientation
//is chosen uniformly and anchors are drawn so the full run stays in
//bounds. Each ship gets a bounded number of attempts; exhausting them is
//fatal and returns ErrPlacementFailed.
func (g *Game) PlaceFleet(rnd *rand.Rand) error {
	size := g.board.Size()
	for _, class := range g.catalog {
		if class.Length > size {
			return fmt.Errorf("%w: %s does not fit on a board of size %d", ErrPlacementFailed, class.Name, size)
		}

		placed := false
		for attempt := 0; attempt < placementAttempts; attempt++ {
			horizontal := rnd.Intn(2) == 0
			var anchor Coordinate
			if horizontal {
				anchor.Col = rnd.Intn(size - class.Length + 1)
				anchor.Row = rnd.Intn(size)
			} else {
				anchor.Col = rnd.Intn(size)
				anchor.Row = rnd.Intn(size - class.Length + 1)
			}

			if err := g.PlaceShipAt(class, anchor, horizontal); err == nil {
				placed = true
				break
			}
		}
		if !placed {
			return fmt.Errorf("%w: could not place %s after %d attempts", ErrPlacementFailed, class.Name, placementAttempts)
		}
	}
	return nil
}
