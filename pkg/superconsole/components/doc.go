// ABOUTME: Package components holds ready-made widgets for the superconsole canvas
// ABOUTME: Layout (Split, Padded, Bordered, Bounded), content (Echo, Text, Markdown), Spinner

// Package components provides widgets implementing superconsole.Component.
//
// Widgets compose: layout widgets wrap children and hand them contracted
// dimensions, leaf widgets read what they show from the draw State or from
// their own fields.
package components
