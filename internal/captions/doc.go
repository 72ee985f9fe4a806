// Package captions holds the built-in meme caption templates and picks a
// varied subset of them for a run.
package captions
