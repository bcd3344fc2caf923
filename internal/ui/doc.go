// Package ui renders the end-of-run backup summary with lipgloss styles.
package ui
