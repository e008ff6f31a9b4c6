// Package tileset defines the Tileset contract the WFC core consumes,
// plus several concrete tilesets external tooling would otherwise have
// to hand-author: an edge-type-matching tileset (the basis for Basic and
// Carcassonne), and a sample-grid pattern-overlap tileset.
//
// The core never interprets tile identity; it only calls the four
// methods below. Concrete tilesets live in their own files, one
// constructor per file.
package tileset
