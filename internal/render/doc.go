// Package render turns generated text into a small markup tree.
//
// Format applies five substitution rules in a fixed order: blank-line runs
// split paragraphs, remaining newlines become line breaks, lines starting with
// '#' become headings, **x** becomes strong and *x* becomes emphasis. There is
// no escape for literal '#' or '*'.
//
// A Fragment can be emitted as HTML, as normalized Markdown for terminal
// renderers, or as plain text.
package render
