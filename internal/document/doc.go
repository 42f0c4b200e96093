// Package document decodes a configuration document into an ordered index of
// the fields declared at two-space indentation. Structured YAML decoding is
// preferred; files that are not valid YAML fall back to a plain line scan so
// hand-edited documents keep working.
package document
