package models

// Category is the semantic classification of a field's raw type
type Category int

const (
	CategoryUnresolved Category = iota
	CategoryScalar
	CategoryUser
	CategoryContainerOfScalar
	CategoryContainerOfUser
)

// String returns the string representation of the category
func (c Category) String() string {
	switch c {
	case CategoryScalar:
		return "scalar"
	case CategoryUser:
		return "user"
	case CategoryContainerOfScalar:
		return "container-of-scalar"
	case CategoryContainerOfUser:
		return "container-of-user"
	default:
		return "unresolved"
	}
}

// IsContainer reports whether the category is one of the container forms
func (c Category) IsContainer() bool {
	return c == CategoryContainerOfScalar || c == CategoryContainerOfUser
}

// ContainerKind describes how generated code fills a standard container
type ContainerKind struct {
	Name         string // qualified name, e.g. std::vector
	Reserve      bool   // supports reserve(size) before filling
	InsertMethod string // method appending one element, e.g. push_back
}

// Direction is the bitmask of serialization directions of a DTO
type Direction uint8

const (
	DirectionNone  Direction = 0
	DirectionIn    Direction = 1
	DirectionOut   Direction = 2
	DirectionInOut Direction = DirectionIn | DirectionOut
)

// Has reports whether every bit of other is set in d
func (d Direction) Has(other Direction) bool {
	return other != DirectionNone && d&other == other
}

// String returns the string representation of the direction
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "in"
	case DirectionOut:
		return "out"
	case DirectionInOut:
		return "in-out"
	default:
		return "none"
	}
}

// DtoField is one serialized member of a DTO
type DtoField struct {
	Name        string
	Alias       string // JSON key, defaults to Name
	RawType     string
	ElementType string // normalized value type; the element type for containers
	Category    Category
	Container   *ContainerKind // set iff Category.IsContainer()
	Description string
	Required    bool
	Ignored     bool
	Line        int
}

// Dto is a class that takes part in JSON serialization
type Dto struct {
	Name          string
	Namespace     string // "::"-terminated or empty
	QualifiedName string
	Description   string
	Direction     Direction
	Fields        []DtoField
}

// RequiredFieldCount returns the number of required, non-ignored fields
func (d Dto) RequiredFieldCount() int {
	count := 0
	for _, f := range d.Fields {
		if f.Required && !f.Ignored {
			count++
		}
	}
	return count
}
