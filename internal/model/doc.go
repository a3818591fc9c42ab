// Package model defines the domain values shared across the app: download
// requests, their outcomes, task status and playlist entries. Values are
// copied between goroutines, never shared.
package model
