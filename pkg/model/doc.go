// Package model defines the presentation descriptors renderers consume: a
// FormModel with its ordered Fields, and the per-render FieldView that
// combines a field with its current value and error. A view is "floated"
// when its value is non-empty, which renderers use to keep the label in its
// compact caption position.
package model
