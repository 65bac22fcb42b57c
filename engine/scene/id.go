package scene

// ID identifies one of the backdrop scenes.
type ID int

const (
	FloatingShapes ID = iota
	ChaosElements
	OrderElements
	CalendarViz
	MatchingViz
	PipelineViz
	PrinciplesViz
	// RotatingSphere is an alternative hero scene; it is not part of the default table.
	RotatingSphere
)

var idNames = [...]string{
	FloatingShapes: "floating_shapes",
	ChaosElements:  "chaos_elements",
	OrderElements:  "order_elements",
	CalendarViz:    "calendar_viz",
	MatchingViz:    "matching_viz",
	PipelineViz:    "pipeline_viz",
	PrinciplesViz:  "principles_viz",
	RotatingSphere: "rotating_sphere",
}

func (id ID) String() string {
	if id < 0 || int(id) >= len(idNames) {
		return "unknown"
	}
	return idNames[id]
}

// ParseID resolves a scene name as printed by String.
//
// Parameters:
//   - name: the scene name
//
// Returns:
//   - ID: the scene
//   - bool: whether the name is known
func ParseID(name string) (ID, bool) {
	for i, n := range idNames {
		if n == name {
			return ID(i), true
		}
	}
	return 0, false
}
