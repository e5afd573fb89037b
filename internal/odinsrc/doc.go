// Package odinsrc is the part of the pipeline of odig
// responsible for locating Odin packages on disk
// and scanning their source files for documented declarations.
//
// It provides [ResolveRoot] to locate the Odin installation root,
// a [Finder] to turn a package reference into a list of source files,
// and a [Scanner] to extract [Decl]s from those files.
// The scanner is line-oriented and does not build a syntax tree.
package odinsrc
