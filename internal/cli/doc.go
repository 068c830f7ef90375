// Package cli contains the interactive bubbletea views: the entry card
// form and the read-only entry list table.
package cli
