package models

// OutputKind identifies which emitter produced a generated file
type OutputKind int

const (
	OutputRoutes OutputKind = iota
	OutputDto
)

// String returns the string representation of the output kind
func (k OutputKind) String() string {
	if k == OutputDto {
		return "dto"
	}
	return "routes"
}

// GeneratedFile is one rendered source unit waiting to be written
type GeneratedFile struct {
	Kind    OutputKind
	Path    string // destination path
	Source  string // header the unit was generated from, empty for the route unit
	Content []byte
}
