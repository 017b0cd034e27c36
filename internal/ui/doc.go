// Package ui holds the ANSI themes shared by the CLI presenter and the
// benchmark dashboard. Presentation code reads colors through the accessor
// functions in colors.go rather than holding a Theme value, so switching
// themes (or honoring NO_COLOR) takes effect everywhere at once.
package ui
