// Package ir provides the ordered JSON value tree that every advancement
// descriptor renders into.
//
// This package has no internal imports. Descriptors in pkg/condition and
// pkg/advancement build ir values; encoders here turn them into text.
//
// Key design constraints:
//   - Object keys keep insertion order (the consuming server reads them in
//     document order and golden output depends on it)
//   - NO float types - numbers are int64
//   - Strings are NFC normalized at the serialization boundary
package ir
