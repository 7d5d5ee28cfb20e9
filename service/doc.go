// Package service provides reusable operations for catalog analysis, PDF
// extraction, manuscript splitting, and figure rendering.
//
// This package is intended for embedding the revision workflow into other
// programs without shelling out to the CLI.
package service
