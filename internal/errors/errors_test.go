package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCode_String(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{AnnotationSyntaxErrorCode, "AnnotationSyntaxError"},
		{AnnotationSemanticErrorCode, "AnnotationSemanticError"},
		{PropertyTypeErrorCode, "PropertyTypeError"},
		{IOErrorCode, "IOError"},
		{CanceledErrorCode, "Canceled"},
		{UnknownErrorCode, "UnknownError"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.code.String())
	}
}

func TestSourceLocation_String(t *testing.T) {
	assert.Equal(t, "unknown location", SourceLocation{}.String())
	assert.Equal(t, "a.h", SourceLocation{File: "a.h"}.String())
	assert.Equal(t, "a.h:12", SourceLocation{File: "a.h", Line: 12}.String())
}

func TestDeclarationError_Message(t *testing.T) {
	decl := DeclarationContext{
		Header:    "controller/user.h",
		Namespace: "api::",
		Class:     "UserController",
		Member:    "Login",
		Line:      42,
	}

	err := NewAnnotationSyntaxError(decl, "api/login", "invalid @route: [%s]", "api/login")

	msg := err.Error()
	assert.Contains(t, msg, "invalid @route: [api/login]")
	assert.Contains(t, msg, "header: controller/user.h")
	assert.Contains(t, msg, "namespace: api::")
	assert.Contains(t, msg, "class: UserController")
	assert.Contains(t, msg, "member: Login")
	assert.Contains(t, msg, "line: 42")
	assert.Equal(t, AnnotationSyntaxErrorCode, err.ErrorCode())
	assert.Equal(t, SourceLocation{File: "controller/user.h", Line: 42}, err.Location())
	assert.Equal(t, "api/login", err.Context()["value"])
}

func TestDeclarationError_FreeFunctionOmitsClass(t *testing.T) {
	decl := DeclarationContext{Header: "h.h", Member: "Health", Line: 3}
	err := NewAnnotationSemanticError(decl, "", "mixed route type")

	assert.NotContains(t, err.Error(), "class:")
	_, hasClass := err.Context()["class"]
	assert.False(t, hasClass)
}

func TestCodeOf_ThroughWrapping(t *testing.T) {
	decl := DeclarationContext{Header: "h.h", Member: "items", Line: 7}
	inner := NewPropertyTypeError(decl, "vector<int", stderrors.New("unexpected EOF"))
	wrapped := fmt.Errorf("processing h.h: %w", inner)

	assert.Equal(t, PropertyTypeErrorCode, CodeOf(wrapped))
	assert.True(t, HasCode(wrapped, PropertyTypeErrorCode))
	assert.False(t, HasCode(wrapped, IOErrorCode))
	assert.Equal(t, UnknownErrorCode, CodeOf(stderrors.New("plain")))

	var declErr *DeclarationError
	require.True(t, stderrors.As(wrapped, &declErr))
	assert.Equal(t, "vector<int", declErr.Value)
	assert.Contains(t, declErr.Error(), "unexpected EOF")
	assert.NotEmpty(t, declErr.Suggestions())
}

func TestWrapIOError(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := WrapIOError("write", "/tmp/out.cpp", cause)

	assert.Equal(t, IOErrorCode, err.ErrorCode())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to write '/tmp/out.cpp': permission denied", err.Error())
	assert.Equal(t, "write", err.Context()["operation"])
}
