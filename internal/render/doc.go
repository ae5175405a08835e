// Package render turns flattened records plus their merge layout into
// concrete parameter-sheet markup.
//
// Output formats and view pages form closed enumerations: dispatch happens
// through explicit switches, and an unknown name maps to the default
// variant, never to reflection or undefined behavior.
package render
