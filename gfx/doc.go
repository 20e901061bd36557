// Package gfx defines the engine-neutral graphics enumerations shared by
// rendering backends: texture formats, bind flags, color spaces and value
// types. The package holds identifiers only; interpreting them (pixel
// layouts, block sizes, native equivalents) is left to backend packages
// such as the parent dxgi package.
package gfx
