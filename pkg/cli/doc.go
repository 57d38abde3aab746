// Package cli implements the command-line interface for the vpackctl tool.
//
// # Overview
//
// The vpackctl CLI mints, inspects, and compares bit-packed version codes.
// A version code packs an ordered set of named components into a single
// non-negative integer, so build tooling can store and order multi-part
// versions as one number.
//
// # Commands
//
// encode - Pack component values into a version code:
//
//	vpackctl encode --schema "Major:7,Minor:19,Patch:5" --values 1,2,3
//
// compare - Order two version codes, including mixed-schema operands:
//
//	vpackctl compare --schema "Major:7,Minor:19,Patch:5" --values 1,2,3 --other-values 1,3,0
//
// get - Extract a single component value from a minted code:
//
//	vpackctl get --schema "Major:7,Minor:19,Patch:5" --values 1,2,3 --name Minor
//
// semver - Parse, encode, and bump Major.Minor.Patch strings:
//
//	vpackctl semver --version 1.2.3 --bump minor
//
// check - Evaluate a version against constraint expressions:
//
//	vpackctl check --version 1.2.3 --constraint ">= 1.2.0" --constraint "< 2.0.0"
//
// manifest - Read and write version codes in build manifests:
//
//	vpackctl manifest set --file build.yaml --version 1.2.3
//	vpackctl manifest get --file build.yaml
//
// serve - Run the vpackd HTTP API:
//
//	vpackctl serve --port 8080
//
// # Schema Format
//
// Schemas are comma-separated component specs. Each spec is either
// "Name:bits" or a bare bit width, which gets a positional name:
//
//	Major:7,Minor:19,Patch:5
//	7,19,5
//
// Component widths must be positive and sum to at most 31 bits.
//
// # Output Formats
//
// Command results serialize to stdout or a file via --output, in JSON,
// YAML, or table format via --format.
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized packages:
//   - pkg/schema - Component schema definition and validation
//   - pkg/vercode - Version code minting and comparison
//   - pkg/semver - Major.Minor.Patch convenience layer
//   - pkg/constraint - Version constraint evaluation
//   - pkg/manifest - Build manifest integration
//   - pkg/serializer - Output formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/vpack/vpack/pkg/cli.version=1.0.0'"
package cli
