package plan

import "strings"

// Catalog is the canonical exercise name reference. The generator feeds the
// names into the prompt to bias generation, and the checker flags names
// outside the catalog as soft warnings.
type Catalog struct {
	names []string
	index map[string]struct{}
}

// NewCatalog builds a catalog from the given names, preserving order and
// dropping duplicates.
func NewCatalog(names ...string) *Catalog {
	c := &Catalog{
		names: make([]string, 0, len(names)),
		index: make(map[string]struct{}, len(names)),
	}
	c.Add(names...)
	return c
}

// Add extends the catalog, ignoring names it already contains.
func (c *Catalog) Add(names ...string) {
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := c.index[key]; ok {
			continue
		}
		c.index[key] = struct{}{}
		c.names = append(c.names, name)
	}
}

// Contains reports whether the catalog holds the name, ignoring case.
func (c *Catalog) Contains(name string) bool {
	_, ok := c.index[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// Names returns a copy of the catalog in insertion order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.names...)
}

// Len returns the number of catalogued names.
func (c *Catalog) Len() int {
	return len(c.names)
}

// DefaultCatalog returns the built-in canonical exercise list.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		"Bench Press",
		"Incline Dumbbell Press",
		"Push-Up",
		"Overhead Press",
		"Lateral Raise",
		"Pull-Up",
		"Chin-Up",
		"Lat Pulldown",
		"Bent-Over Row",
		"Seated Cable Row",
		"Bicep Curl",
		"Hammer Curl",
		"Tricep Dip",
		"Tricep Pushdown",
		"Squat",
		"Goblet Squat",
		"Front Squat",
		"Deadlift",
		"Romanian Deadlift",
		"Leg Press",
		"Lunges",
		"Bulgarian Split Squat",
		"Leg Curl",
		"Leg Extension",
		"Calf Raise",
		"Hip Thrust",
		"Glute Bridge",
		"Plank",
		"Side Plank",
		"Crunches",
		"Russian Twist",
		"Hanging Leg Raise",
		"Mountain Climbers",
		"Burpees",
		"Jumping Jacks",
		"Jump Rope",
		"Running",
		"Cycling",
		"Rowing Machine",
		"Swimming",
		"Walking",
		"Hamstring Stretch",
		"Quad Stretch",
		"Shoulder Stretch",
		"Cat-Cow Stretch",
		"Yoga Flow",
		"Warm-Up",
		"Cool-Down",
	)
}
