package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/srvgen/internal/errors"
)

const yamlDump = `functions:
  - name: Health
    namespace: api
    returns: void
    line_number: 5
    doxygen: |
      /// @route /health
classes:
  - name: UserController
    namespace: api
    line_number: 9
    methods:
      public:
        - name: List
          returns: void
          static: true
          line_number: 12
          doxygen: "/// @route /users"
      private:
        - name: helper
          returns: int
          const: true
    properties:
      public:
        - name: id
          type: int
          line_number: 20
        - name: count
          type: int
          static: true
`

const jsonDump = `{
  "functions": [],
  "classes": [
    {
      "name": "User",
      "namespace": "dto",
      "properties": {
        "public": [
          {"name": "_in", "type": "DTO_IN", "line_number": 4},
          {"name": "tags", "type": "std::vector<std::string>", "doxygen": "/// @optional\n/// @brief labels"}
        ]
      }
    }
  ]
}`

const tomlDump = `[[functions]]
name = "Health"
namespace = "api"
returns = "void"
line_number = 5
doxygen = "/// @route /health"

[[classes]]
name = "User"
namespace = "dto"

[[classes.properties.public]]
name = "_out"
type = "DTO_OUT"

[[classes.properties.public]]
name = "name"
type = "std::string"
line_number = 8
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDumpLoader_YAML(t *testing.T) {
	dir := t.TempDir()
	header := filepath.Join(dir, "user.h")
	writeFile(t, header, "")
	writeFile(t, header+".decl.yaml", yamlDump)

	file, err := NewDumpLoader().Load(header, "api/user.h")
	require.NoError(t, err)

	assert.Equal(t, header, file.Path)
	assert.Equal(t, "api/user.h", file.IncludePath)

	require.Len(t, file.Functions, 1)
	assert.Equal(t, "Health", file.Functions[0].Name)
	assert.Equal(t, "void", file.Functions[0].ReturnType)
	assert.Equal(t, 5, file.Functions[0].LineNumber)
	assert.Equal(t, "/// @route /health\n", file.Functions[0].DocComment)

	require.Len(t, file.Classes, 1)
	class := file.Classes[0]
	require.Len(t, class.Methods.Public, 1)
	assert.True(t, class.Methods.Public[0].Static)
	require.Len(t, class.Methods.Private, 1)
	assert.True(t, class.Methods.Private[0].Const)
	require.Len(t, class.Properties.Public, 2)
	assert.Equal(t, "int", class.Properties.Public[0].RawType)
	assert.True(t, class.Properties.Public[1].Static)
}

func TestDumpLoader_JSON(t *testing.T) {
	dir := t.TempDir()
	header := filepath.Join(dir, "user.hpp")
	writeFile(t, header+".decl.json", jsonDump)

	file, err := NewDumpLoader().Load(header, "user.hpp")
	require.NoError(t, err)
	require.Len(t, file.Classes, 1)

	props := file.Classes[0].Properties.Public
	require.Len(t, props, 2)
	assert.Equal(t, "DTO_IN", props[0].RawType)
	assert.Equal(t, 4, props[0].LineNumber)
	assert.Equal(t, "std::vector<std::string>", props[1].RawType)
	assert.Equal(t, "/// @optional\n/// @brief labels", props[1].DocComment)
}

func TestDumpLoader_TOML(t *testing.T) {
	dir := t.TempDir()
	header := filepath.Join(dir, "user.h")
	writeFile(t, header+".decl.toml", tomlDump)

	file, err := NewDumpLoader().Load(header, "user.h")
	require.NoError(t, err)

	require.Len(t, file.Functions, 1)
	assert.Equal(t, "api", file.Functions[0].Namespace)
	require.Len(t, file.Classes, 1)
	props := file.Classes[0].Properties.Public
	require.Len(t, props, 2)
	assert.Equal(t, "DTO_OUT", props[0].RawType)
	assert.Equal(t, 8, props[1].LineNumber)
}

func TestDumpLoader_LookupOrder(t *testing.T) {
	dir := t.TempDir()
	header := filepath.Join(dir, "user.h")
	writeFile(t, header+".decl.toml", tomlDump)
	writeFile(t, header+".decl.yaml", yamlDump)

	path, ok := DumpPath(header)
	require.True(t, ok)
	assert.Equal(t, header+".decl.yaml", path)
}

func TestDumpLoader_MissingDump(t *testing.T) {
	header := filepath.Join(t.TempDir(), "user.h")
	writeFile(t, header, "")

	_, err := NewDumpLoader().Load(header, "user.h")
	require.Error(t, err)
	assert.Equal(t, errors.IOErrorCode, errors.CodeOf(err))
	assert.Contains(t, err.Error(), "user.h.decl.yaml")
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode("user.h.decl.yaml", []byte("functions: [oops"))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.IOErrorCode))

	_, err = Decode("user.h.decl.toml", []byte("[[functions]\nname ="))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.IOErrorCode))
}
