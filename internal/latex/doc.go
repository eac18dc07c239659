// Package latex provides the buffer-scanning primitives the snippet engine
// shares with its cursor behaviors: a nesting-aware matching-bracket finder
// over plain text, math-region classification (inline vs block), named
// environment detection, and the auto-fraction, bracket-enlarging, matrix
// shortcut, and tabout behaviors built on top of them.
//
// Nothing here interprets LaTeX semantically; all scanning is literal
// substring matching with nesting depth.
package latex
