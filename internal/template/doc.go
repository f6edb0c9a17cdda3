// Package template materializes a project from a template tree that has
// already been copied to disk. A template declares its variables, the file
// extensions eligible for {{name}} substitution and an ordered list of path
// renames in a template.toml descriptor at its root.
//
// ProcessDirectory runs three phases in a fixed order: substitution of bound
// placeholders in eligible files, renames applied last-declared first, and a
// verification scan that reports leftover placeholders as warnings. There is
// no rollback; a failure in the first two phases stops processing where it is.
package template
