// Package scaffold creates new mod projects. It powers the "emod create"
// command: a template tree is copied into a fresh project directory, bound
// to newly generated project identifiers and materialized in place, and the
// resulting manifests are checked against their schemas.
//
// A built-in "default" template is embedded so projects can be created
// without fetching the template repository.
package scaffold
