package server

import (
	"github.com/vpack/vpack/pkg/schema"
)

// API request and response shapes.

// ComponentSpec describes one schema component in a request. Name is
// optional; unnamed components get positional names.
type ComponentSpec struct {
	Name string `json:"name,omitempty"`
	Bits int    `json:"bits"`
}

// Operand pairs a schema with a value tuple shaped to it.
type Operand struct {
	Schema []ComponentSpec `json:"schema"`
	Values []int64         `json:"values"`
}

// EncodeRequest is the body of POST /v1/encode.
type EncodeRequest struct {
	Schema []ComponentSpec `json:"schema"`
	Values []int64         `json:"values"`
}

// ComponentValue is one named component with its minted value.
type ComponentValue struct {
	Name  string `json:"name"`
	Bits  int    `json:"bits"`
	Value int64  `json:"value"`
}

// EncodeResponse is the body of a successful POST /v1/encode.
type EncodeResponse struct {
	Encoded    int64            `json:"encoded"`
	Display    string           `json:"display"`
	TotalBits  int              `json:"totalBits"`
	Components []ComponentValue `json:"components"`
}

// CompareRequest is the body of POST /v1/compare.
type CompareRequest struct {
	A Operand `json:"a"`
	B Operand `json:"b"`
}

// CompareResponse is the body of a successful POST /v1/compare.
// Result is -1, 0, or 1.
type CompareResponse struct {
	Result int  `json:"result"`
	Equal  bool `json:"equal"`
}

// SemverResponse is the body of a successful GET /v1/semver.
type SemverResponse struct {
	Version string `json:"version"`
	Encoded int64  `json:"encoded"`
	Display string `json:"display"`
	Major   int64  `json:"major"`
	Minor   int64  `json:"minor"`
	Patch   int64  `json:"patch"`
}

// buildSchema assembles a schema from request component specs,
// assigning positional names to unnamed components.
func buildSchema(specs []ComponentSpec) (schema.Schema, error) {
	components := make([]schema.Component, 0, len(specs))
	for i, spec := range specs {
		componentName := spec.Name
		if componentName == "" {
			componentName = schema.AutoName(i)
		}
		components = append(components, schema.Component{
			Name: componentName,
			Bits: spec.Bits,
		})
	}
	return schema.New(components...)
}
