// Package model defines the core data structures used throughout
// the cfkey-extractor application.
//
// # Target
//
// Target describes where the credential lives inside the remote
// installer package: the resource URL plus the byte offset and length
// of the compressed region that contains it.
//
//	target := model.DefaultTarget()
//	fmt.Println(target.RangeHeader()) // "bytes=82926761-83010957"
//
// The default target values were discovered by manual inspection of the
// CurseForge AppImage and are fixed at build time. They are brittle by
// design: any upstream repackaging invalidates the offset.
//
// # Marker
//
// Marker describes how the credential is delimited inside the
// decompressed bytes: a literal prefix followed by the value and a
// terminator byte.
//
//	marker := model.DefaultMarker()
//	// finds `"cfCoreApiKey":"<value>"`
//
// # APIKey
//
// APIKey holds the extracted credential, the program's sole output.
package model
