package element

import "github.com/Carmen-Shannon/oxy-scroll/common"

type arenaImpl struct {
	elements []*Element
	released bool
}

// Arena owns the elements of one mounted scene.
// Elements are addressed by ID; the renderer walks the arena to resolve IDs to
// GPU resources. An arena is confined to the render goroutine and is not safe
// for concurrent use.
type Arena interface {
	// Create adds an element and returns its ID.
	// Creating on a released arena returns -1 and stores nothing.
	//
	// Parameters:
	//   - g: the element geometry
	//   - options: functional options applied over the defaults
	//
	// Returns:
	//   - ID: the new element's ID
	Create(g Geometry, options ...ElementBuilderOption) ID

	// Get resolves an ID.
	// Unknown IDs and IDs of a released arena report false.
	//
	// Parameters:
	//   - id: the element ID
	//
	// Returns:
	//   - *Element: the element, or nil
	//   - bool: whether the element exists
	Get(id ID) (*Element, bool)

	// Update applies fn to the element with the given ID if it exists.
	//
	// Parameters:
	//   - id: the element ID
	//   - fn: the mutation to apply
	//
	// Returns:
	//   - bool: whether fn ran
	Update(id ID, fn func(*Element)) bool

	// Each calls fn for every element in creation order.
	Each(fn func(*Element))

	// Len returns the number of live elements.
	Len() int

	// Release drops every element. Subsequent lookups fail. Safe to call twice.
	Release()

	// Released reports whether Release has been called.
	Released() bool
}

var _ Arena = &arenaImpl{}

// NewArena creates an empty arena.
//
// Returns:
//   - Arena: the new arena
func NewArena() Arena {
	return &arenaImpl{}
}

func (a *arenaImpl) Create(g Geometry, options ...ElementBuilderOption) ID {
	if a.released {
		return -1
	}
	e := &Element{
		ID:        ID(len(a.elements)),
		Geometry:  g,
		Scale:     common.Uniform(1),
		Color:     common.White,
		Emissive:  common.Black,
		Roughness: 1,
		Opacity:   1,
		Visible:   true,
	}
	for _, option := range options {
		option(e)
	}
	a.elements = append(a.elements, e)
	return e.ID
}

func (a *arenaImpl) Get(id ID) (*Element, bool) {
	if a.released || id < 0 || int(id) >= len(a.elements) {
		return nil, false
	}
	return a.elements[id], true
}

func (a *arenaImpl) Update(id ID, fn func(*Element)) bool {
	e, ok := a.Get(id)
	if !ok {
		return false
	}
	fn(e)
	return true
}

func (a *arenaImpl) Each(fn func(*Element)) {
	if a.released {
		return
	}
	for _, e := range a.elements {
		fn(e)
	}
}

func (a *arenaImpl) Len() int {
	if a.released {
		return 0
	}
	return len(a.elements)
}

func (a *arenaImpl) Release() {
	a.elements = nil
	a.released = true
}

func (a *arenaImpl) Released() bool {
	return a.released
}
