// Package dxgi translates between the engine-neutral graphics enumerations
// in [github.com/gogpu/dxgi/gfx] and the DXGI enumerations consumed by
// Direct3D-based backends.
//
// # Overview
//
// Three translation surfaces are provided:
//
//   - Texture formats: [FromTextureFormat] maps an engine format (plus an
//     optional binding intent) to a [Format]; [ToTextureFormat] maps back.
//     Both directions run off process-lifetime lookup tables built lazily
//     on first use; after that every call is a plain array index.
//   - Color spaces: [FromColorSpace] and [ToColorSpace] are stateless
//     best-effort switches. DXGI supports far fewer combinations of
//     transfer function and gamut than the engine enumeration, so several
//     mappings are deliberately lossy; the fallback choices are documented
//     on each case and are not round-trip safe.
//   - Value types: [FromValueType] maps a scalar type and component count
//     to the matching vertex-attribute format.
//
// # Typeless formats and binding intent
//
// DXGI expresses depth-stencil storage as "typeless" base formats that
// must be narrowed to a concrete variant before use: a depth-stencil view,
// a shader resource view and an unordered-access view each require a
// different concrete format over the same storage. [CorrectFormat] performs
// that narrowing from a [gfx.BindFlags] intent and is applied automatically
// by [FromTextureFormat] when intent flags are passed.
//
// # Errors and diagnostics
//
// Enumeration values outside their declared ranges are programming errors
// and panic. Mapping gaps (an engine format with no DXGI equivalent, an
// unexpected format in a depth-stencil correction) are reported through the
// package logger (see [SetLogger]) and degrade to best-effort results so a
// rendering pipeline keeps running on a single unsupported format.
//
// All functions are safe for concurrent use; table construction happens at
// most once and is fully ordered before any reader observes the table.
package dxgi
