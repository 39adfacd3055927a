// Package render implements report.Sink for PDF files and plain text.
//
// [PDF] draws each plot panel with go-chart and lays the pages out with
// fpdf; the file is only written by [PDF.Close]. [Text] renders the same
// pages with asciigraph for terminals and pipes.
package render
