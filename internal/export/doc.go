// Package export writes parsed polar summaries as JSON, CSV or XLSX.
package export
