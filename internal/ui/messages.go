package ui

import (
	"time"

	"github.com/justelson/devscope/internal/cache"
	"github.com/justelson/devscope/internal/gitscan"
	"github.com/justelson/devscope/internal/registry"
)

// Bubble Tea messages
type categoryScannedMsg struct {
	category registry.Category
	entries  []cache.Entry
}

// emitted after every category settled and the cache was saved
type scanFinishedMsg struct{ saveErr error }

// periodic tick for the status bar clock
type tickMsg time.Time

// git info for the working directory
type gitInfoMsg struct {
	info gitscan.RepoInfo
	ok   bool
}

type noticeMsg string
