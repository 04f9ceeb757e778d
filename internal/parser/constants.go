package parser

import "github.com/toyz/srvgen/internal/models"

const (
	// RegexMarker prefixes a regular-expression route path
	RegexMarker = "~"

	// PathPrefix must start every route path
	PathPrefix = "/"

	// ReturnVoid is the only return type accepted on route handlers
	ReturnVoid = "void"

	// DTO marker macros declared as public fields
	MarkerIn    = "DTO_IN"
	MarkerOut   = "DTO_OUT"
	MarkerInOut = "DTO_IN_OUT"
)

var markerDirections = map[string]models.Direction{
	MarkerIn:    models.DirectionIn,
	MarkerOut:   models.DirectionOut,
	MarkerInOut: models.DirectionInOut,
}

// handlerQualifierBlacklist lists the qualifiers a route handler method may not carry
var handlerQualifierBlacklist = map[string]bool{
	"const":        true,
	"virtual":      true,
	"pure_virtual": true,
	"override":     true,
	"final":        true,
	"operator":     true,
	"constructor":  true,
	"destructor":   true,
	"extern":       true,
	"template":     true,
	"friend":       true,
	"default":      true,
	"deleted":      true,
}
