package model

// Package model defines domain data structures used across the app: download
// requests and their modes, the per-request collaborator configuration, and
// the probe metadata projection with its display formatting.
