// Package cart holds a visitor's selection of pieces before it is turned
// into an order intent.
package cart

import (
	"errors"
	"time"

	"heritage_gold/internal/domain/entities"
)

var (
	ErrAlreadyInCart = errors.New("item already in your selection")
	ErrNotInCart     = errors.New("item not in your selection")
	ErrEmptyCart     = errors.New("selection is empty")
)

// Line is one selected piece. Estimate is frozen when the line is added and
// is never re-priced.
type Line struct {
	Item     entities.Item
	Estimate int64
	AddedAt  time.Time
}

// Cart keeps lines in insertion order with at most one line per item id.
type Cart struct {
	lines []Line
	now   func() time.Time
}

func New() *Cart {
	return &Cart{now: time.Now}
}

func (c *Cart) Add(item entities.Item, estimate int64) error {
	if c.index(item.ItemID) >= 0 {
		return ErrAlreadyInCart
	}
	c.lines = append(c.lines, Line{Item: item, Estimate: estimate, AddedAt: c.now().UTC()})
	return nil
}

func (c *Cart) Remove(itemID string) error {
	i := c.index(itemID)
	if i < 0 {
		return ErrNotInCart
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return nil
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the current lines.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// Total is the sum of the frozen estimates.
func (c *Cart) Total() int64 {
	var sum int64
	for _, l := range c.lines {
		sum += l.Estimate
	}
	return sum
}

// OrderLines converts the selection to the lines stored on an order intent.
func (c *Cart) OrderLines() []entities.OrderIntentLine {
	out := make([]entities.OrderIntentLine, 0, len(c.lines))
	for _, l := range c.lines {
		out = append(out, entities.OrderIntentLine{ItemID: l.Item.ItemID, Name: l.Item.Name, Estimate: l.Estimate})
	}
	return out
}

func (c *Cart) index(itemID string) int {
	for i, l := range c.lines {
		if l.Item.ItemID == itemID {
			return i
		}
	}
	return -1
}
