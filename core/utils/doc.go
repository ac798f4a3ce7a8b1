// Package utils provides permissive type conversion helpers.
//
// EXIF documents and album descriptors come from loosely-typed producers:
// numbers arrive as strings, strings as numbers. These helpers normalize such
// values without failing, returning nil pointers for absent or unparseable
// numeric fields.
package utils
