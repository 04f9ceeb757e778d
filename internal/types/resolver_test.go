package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/srvgen/internal/models"
)

func TestResolver_Resolve(t *testing.T) {
	known := NewKnownTypes("dto::Item", "Global")
	r := NewResolver()

	tests := []struct {
		name      string
		raw       string
		namespace string
		wantType  string
		wantCat   models.Category
		wantCont  string
	}{
		{name: "scalar int", raw: "int", wantType: "int", wantCat: models.CategoryScalar},
		{name: "qualified scalar", raw: "std::string", wantType: "std::string", wantCat: models.CategoryScalar},
		{name: "two word scalar", raw: "unsigned int", wantType: "unsigned int", wantCat: models.CategoryScalar},
		{name: "surrounding whitespace", raw: "  double ", wantType: "double", wantCat: models.CategoryScalar},
		{name: "user type as given", raw: "dto::Item", namespace: "other", wantType: "dto::Item", wantCat: models.CategoryUser},
		{name: "user type via namespace", raw: "Item", namespace: "dto", wantType: "dto::Item", wantCat: models.CategoryUser},
		{name: "global user type", raw: "Global", namespace: "dto", wantType: "Global", wantCat: models.CategoryUser},
		{name: "unknown type", raw: "Unknown", namespace: "dto", wantCat: models.CategoryUnresolved},
		{name: "vector of scalar", raw: "std::vector<int>", wantType: "int", wantCat: models.CategoryContainerOfScalar, wantCont: "std::vector"},
		{name: "unqualified container", raw: "vector<std::string>", wantType: "std::string", wantCat: models.CategoryContainerOfScalar, wantCont: "std::vector"},
		{name: "set of user", raw: "std::set<Item>", namespace: "dto", wantType: "dto::Item", wantCat: models.CategoryContainerOfUser, wantCont: "std::set"},
		{name: "spaced template", raw: "std::list< unsigned   int >", wantType: "unsigned int", wantCat: models.CategoryContainerOfScalar, wantCont: "std::list"},
		{name: "unsupported container", raw: "std::map<int>", wantCat: models.CategoryUnresolved},
		{name: "two arguments", raw: "std::vector<int, Alloc>", wantCat: models.CategoryUnresolved},
		{name: "nested container", raw: "std::vector<std::vector<int>>", wantCat: models.CategoryUnresolved},
		{name: "unknown element", raw: "std::deque<Missing>", wantCat: models.CategoryUnresolved},
		{name: "trailing tokens", raw: "std::vector<int>*", wantCat: models.CategoryUnresolved},
		{name: "empty argument list", raw: "std::less<>", wantCat: models.CategoryUnresolved},
		{name: "empty container arguments", raw: "std::vector<>", wantCat: models.CategoryUnresolved},
		{name: "nested empty argument list", raw: "std::set<int, std::greater<>>", wantCat: models.CategoryUnresolved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := r.Resolve(tt.raw, tt.namespace, known)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCat, res.Category)
			if tt.wantCat == models.CategoryUnresolved {
				return
			}
			assert.Equal(t, tt.wantType, res.Type)
			if tt.wantCont == "" {
				assert.Nil(t, res.Container)
			} else {
				require.NotNil(t, res.Container)
				assert.Equal(t, tt.wantCont, res.Container.Name)
			}
		})
	}
}

func TestResolver_ContainerCapabilities(t *testing.T) {
	r := NewResolver()

	res, err := r.Resolve("std::vector<int>", "", NewKnownTypes())
	require.NoError(t, err)
	require.NotNil(t, res.Container)
	assert.True(t, res.Container.Reserve)
	assert.Equal(t, "push_back", res.Container.InsertMethod)

	res, err = r.Resolve("std::unordered_set<int>", "", NewKnownTypes())
	require.NoError(t, err)
	require.NotNil(t, res.Container)
	assert.False(t, res.Container.Reserve)
	assert.Equal(t, "emplace", res.Container.InsertMethod)
}

func TestResolver_ExtraContainer(t *testing.T) {
	r := NewResolver(models.ContainerKind{Name: "std::multiset", InsertMethod: "emplace"})

	res, err := r.Resolve("std::multiset<int>", "", NewKnownTypes())
	require.NoError(t, err)
	assert.Equal(t, models.CategoryContainerOfScalar, res.Category)

	_, ok := r.Container("std::vector")
	assert.True(t, ok, "default containers are kept")
}

func TestResolver_MalformedType(t *testing.T) {
	r := NewResolver()

	for _, raw := range []string{"std::vector<int", "<int>", "std::vector<int>>", "std::map<int,>"} {
		t.Run(raw, func(t *testing.T) {
			_, err := r.Resolve(raw, "", NewKnownTypes())
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedType))
		})
	}
}

func TestKnownTypes_WithCopies(t *testing.T) {
	base := NewKnownTypes("a::A")
	next := base.With("a::B")

	assert.True(t, next.Contains("a::A"))
	assert.True(t, next.Contains("a::B"))
	assert.False(t, base.Contains("a::B"))
	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 2, next.Len())
}

func TestKnownTypes_ZeroValue(t *testing.T) {
	var k KnownTypes
	assert.False(t, k.Contains("x"))
	assert.True(t, k.With("x").Contains("x"))
}
