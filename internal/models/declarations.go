package models

import "strings"

// Declarations is the external header parser's model of one header file.
// Field names follow the parser's JSON export so dumps decode directly.
type Declarations struct {
	Functions []Function `yaml:"functions" toml:"functions"`
	Classes   []Class    `yaml:"classes" toml:"classes"`
}

// HeaderFile is one processed header together with its declarations
type HeaderFile struct {
	Path         string `yaml:"path"`    // absolute path, the file identity used by the cache
	IncludePath  string `yaml:"include"` // path written into generated #include lines
	Declarations `yaml:",inline"`
}

// Function describes a free function or a class method
type Function struct {
	Name       string `yaml:"name" toml:"name"`
	Namespace  string `yaml:"namespace" toml:"namespace"`
	ReturnType string `yaml:"returns" toml:"returns"`
	LineNumber int    `yaml:"line_number" toml:"line_number"`
	DocComment string `yaml:"doxygen" toml:"doxygen"`

	// qualifier flags
	Static      bool `yaml:"static" toml:"static"`
	Const       bool `yaml:"const" toml:"const"`
	Virtual     bool `yaml:"virtual" toml:"virtual"`
	PureVirtual bool `yaml:"pure_virtual" toml:"pure_virtual"`
	Override    bool `yaml:"override" toml:"override"`
	Final       bool `yaml:"final" toml:"final"`
	Operator    bool `yaml:"operator" toml:"operator"`
	Constructor bool `yaml:"constructor" toml:"constructor"`
	Destructor  bool `yaml:"destructor" toml:"destructor"`
	Extern      bool `yaml:"extern" toml:"extern"`
	Template    bool `yaml:"template" toml:"template"`
	Friend      bool `yaml:"friend" toml:"friend"`
	Default     bool `yaml:"default" toml:"default"`
	Deleted     bool `yaml:"deleted" toml:"deleted"`
	Inline      bool `yaml:"inline" toml:"inline"`
}

// Qualifier is a named qualifier flag of a function
type Qualifier struct {
	Name string
	Set  bool
}

// Qualifiers returns the qualifier flags in a fixed order
func (f Function) Qualifiers() []Qualifier {
	return []Qualifier{
		{"static", f.Static},
		{"const", f.Const},
		{"virtual", f.Virtual},
		{"pure_virtual", f.PureVirtual},
		{"override", f.Override},
		{"final", f.Final},
		{"operator", f.Operator},
		{"constructor", f.Constructor},
		{"destructor", f.Destructor},
		{"extern", f.Extern},
		{"template", f.Template},
		{"friend", f.Friend},
		{"default", f.Default},
		{"deleted", f.Deleted},
		{"inline", f.Inline},
	}
}

// Access is a C++ member access level
type Access int

const (
	AccessPublic Access = iota
	AccessProtected
	AccessPrivate
)

// String returns the C++ keyword for the access level
func (a Access) String() string {
	switch a {
	case AccessPublic:
		return "public"
	case AccessProtected:
		return "protected"
	case AccessPrivate:
		return "private"
	default:
		return "unknown"
	}
}

// Class describes a class or struct declaration
type Class struct {
	Name       string      `yaml:"name" toml:"name"`
	Namespace  string      `yaml:"namespace" toml:"namespace"`
	LineNumber int         `yaml:"line_number" toml:"line_number"`
	DocComment string      `yaml:"doxygen" toml:"doxygen"`
	Methods    MethodSet   `yaml:"methods" toml:"methods"`
	Properties PropertySet `yaml:"properties" toml:"properties"`
}

// MethodSet groups a class's methods by access level
type MethodSet struct {
	Public    []Function `yaml:"public" toml:"public"`
	Protected []Function `yaml:"protected" toml:"protected"`
	Private   []Function `yaml:"private" toml:"private"`
}

// ByAccess returns the methods declared with the given access level
func (m MethodSet) ByAccess(access Access) []Function {
	switch access {
	case AccessPublic:
		return m.Public
	case AccessProtected:
		return m.Protected
	case AccessPrivate:
		return m.Private
	default:
		return nil
	}
}

// PropertySet groups a class's member variables by access level
type PropertySet struct {
	Public    []Field `yaml:"public" toml:"public"`
	Protected []Field `yaml:"protected" toml:"protected"`
	Private   []Field `yaml:"private" toml:"private"`
}

// Field describes a member variable
type Field struct {
	Name       string `yaml:"name" toml:"name"`
	RawType    string `yaml:"type" toml:"type"`
	Static     bool   `yaml:"static" toml:"static"`
	LineNumber int    `yaml:"line_number" toml:"line_number"`
	DocComment string `yaml:"doxygen" toml:"doxygen"`
}

// FormatNamespace returns ns terminated by "::", or "" for the global namespace
func FormatNamespace(ns string) string {
	ns = strings.TrimSpace(ns)
	if ns == "" || strings.HasSuffix(ns, "::") {
		return ns
	}
	return ns + "::"
}
