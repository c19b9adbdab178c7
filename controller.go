package hypview

import (
	"fmt"
)

// Controller binds one numeric slot of a UniformDict to a user-editable
// control. Edits are clamped into [From, To], written through the path, and
// then reported to the update callback (which typically requests a redraw or
// a full raytracing-data recompute). Pulling the model value back into the
// display never fires the callback, so a recompute that rewrites the dict
// cannot loop back into itself.
type Controller struct {
	Dict UniformDict
	Path Path

	From, To     float64
	FormatString string

	// UpdateFunction runs after every successful user edit.
	UpdateFunction func()

	// Display, when set, receives the formatted value whenever it changes.
	Display func(text string)
}

// NewController binds path into dict with the given range. A zero range
// (From == To == 0) means unclamped.
func NewController(dict UniformDict, path Path, from, to float64) *Controller {
	return &Controller{
		Dict:         dict,
		Path:         path,
		From:         from,
		To:           to,
		FormatString: "%.2f",
	}
}

func (c *Controller) clamp(value float64) float64 {
	if c.From == 0 && c.To == 0 {
		return value
	}
	if value < c.From {
		return c.From
	}
	if value > c.To {
		return c.To
	}
	return value
}

// Set applies a user edit: clamp, write, notify. Out-of-range input is
// clamped to the nearest bound, never an error.
func (c *Controller) Set(value float64) error {
	value = c.clamp(value)
	if err := c.Path.Set(c.Dict, value); err != nil {
		return err
	}
	c.refreshDisplay(value)
	if c.UpdateFunction != nil {
		c.UpdateFunction()
	}
	return nil
}

// Update refreshes the displayed value from the dict without invoking the
// update callback. Used when the model changed underneath the control, e.g.
// after fillings were pulled back from the manifold.
func (c *Controller) Update() error {
	value, err := c.Path.Get(c.Dict)
	if err != nil {
		return err
	}
	c.refreshDisplay(value)
	return nil
}

// Value returns the current model value under the binding.
func (c *Controller) Value() (float64, error) {
	return c.Path.Get(c.Dict)
}

func (c *Controller) refreshDisplay(value float64) {
	if c.Display == nil {
		return
	}
	c.Display(fmt.Sprintf(c.FormatString, value))
}

// BoolController binds a bool-valued uniform to a checkbox-like control.
type BoolController struct {
	Dict UniformDict
	Key  string

	UpdateFunction func()
}

func (c *BoolController) Set(value bool) {
	v := c.Dict[c.Key]
	v.Bool = value
	c.Dict[c.Key] = v
	if c.UpdateFunction != nil {
		c.UpdateFunction()
	}
}

func (c *BoolController) Get() bool {
	return c.Dict[c.Key].Bool
}
