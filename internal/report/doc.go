// Package report assembles the airfoil comparison report.
//
// A [Builder] scans a directory for polar files, parses each with a
// polar.Parser, sorts the records by CL at max CL/CD and lays them out as
// pages:
//
//	page 1   title
//	page 2   table of contents
//	page 3+  one plot page per airfoil, in sort order
//
// Pages are plain descriptions ([Page], [Panel]); drawing them is left to a
// [Sink]. Files that fail to parse are logged and skipped; the run fails
// only when none survive.
package report
