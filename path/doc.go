// Package path builds the canonical dotted/bracketed path strings used to
// report where in a value a check failed: root.addresses[2].zip.
//
// A Builder is immutable: every method returns a new Builder with one more
// segment appended, so a single prefix can be shared across sibling
// branches (union alternatives, tuple elements, interface properties)
// without them interfering with each other.
package path
