package ui

// Package ui contains the interactive terminal interface: a fixed five-option
// menu loop that stages one request per cycle and hands it to the download
// service. All console strings live in constants.go.
