// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors and a catalog of Markdown help pages
// rendered with glamour when pwgen fails in a known way.
package issue
