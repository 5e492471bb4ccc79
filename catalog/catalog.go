package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/figure"
)

// ErrDuplicateID is returned by New when two exercises share an id.
var ErrDuplicateID = errors.New("catalog: duplicate exercise id")

// Exercise is one compiled-in exercise: its prescription defaults and the
// two keyframes its illustration moves between.
type Exercise struct {
	ID          string
	Name        string
	BodyPart    BodyPart
	Sets        int
	Reps        int
	HoldSeconds int

	Start figure.Frame
	End   figure.Frame
}

// Catalog is a read-only set of exercises, queryable by id or category.
// It is safe for concurrent use.
type Catalog struct {
	exercises []Exercise
	byID      map[string]int
}

// New builds a catalog from exercises, preserving their order.
func New(exercises ...Exercise) (*Catalog, error) {
	c := &Catalog{
		exercises: make([]Exercise, 0, len(exercises)),
		byID:      make(map[string]int, len(exercises)),
	}
	for _, ex := range exercises {
		if _, dup := c.byID[ex.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, ex.ID)
		}
		c.byID[ex.ID] = len(c.exercises)
		c.exercises = append(c.exercises, ex.clone())
	}
	return c, nil
}

// Get returns the exercise with the given id.
func (c *Catalog) Get(id string) (Exercise, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Exercise{}, false
	}
	return c.exercises[i].clone(), true
}

// ByBodyPart returns the exercises of one category in catalog order.
func (c *Catalog) ByBodyPart(bp BodyPart) []Exercise {
	var out []Exercise
	for _, ex := range c.exercises {
		if ex.BodyPart == bp {
			out = append(out, ex.clone())
		}
	}
	return out
}

// All returns every exercise in catalog order.
func (c *Catalog) All() []Exercise {
	out := make([]Exercise, len(c.exercises))
	for i, ex := range c.exercises {
		out[i] = ex.clone()
	}
	return out
}

// Len returns the number of exercises.
func (c *Catalog) Len() int {
	return len(c.exercises)
}

var defaultCatalog = func() *Catalog {
	c, err := New(seed()...)
	if err != nil {
		panic(err)
	}
	return c
}()

// Default returns the compiled-in catalog.
func Default() *Catalog {
	return defaultCatalog
}

// Get looks id up in the compiled-in catalog.
func Get(id string) (Exercise, bool) {
	return defaultCatalog.Get(id)
}

// ByBodyPart lists one category of the compiled-in catalog.
func ByBodyPart(bp BodyPart) []Exercise {
	return defaultCatalog.ByBodyPart(bp)
}

// All lists the compiled-in catalog.
func All() []Exercise {
	return defaultCatalog.All()
}

// clone copies the props so callers cannot reach the catalog's own values.
func (ex Exercise) clone() Exercise {
	ex.Start = cloneFrame(ex.Start)
	ex.End = cloneFrame(ex.End)
	return ex
}

func cloneFrame(f figure.Frame) figure.Frame {
	p := f.Props
	if p.Mat != nil {
		m := *p.Mat
		p.Mat = &m
	}
	if p.Surface != nil {
		s := *p.Surface
		p.Surface = &s
	}
	if p.Wall != nil {
		w := *p.Wall
		p.Wall = &w
	}
	if p.Chair != nil {
		p.Chair = &figure.Chair{Points: slices.Clone(p.Chair.Points)}
	}
	if p.Arrow != nil {
		p.Arrow = &figure.Arrow{Points: slices.Clone(p.Arrow.Points)}
	}
	f.Props = p
	return f
}
