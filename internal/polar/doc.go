// Package polar parses XFOIL polar files and finds the max CL/CD point.
//
// A polar file is a fixed-size text header followed by whitespace-delimited
// rows of seven columns:
//
//	alpha  CL  CD  CDp  CM  Top_Xtr  Bot_Xtr
//
// The header carries the airfoil name ("Calculated polar for: NACA 2412") and
// the Reynolds number, which XFOIL splits across columns ("Re = 1.000 e 6").
//
// # Example
//
//	p, _ := polar.NewParser(polar.DefaultFormat())
//	rec, err := p.ParseFile("polar data/2412_polar.txt")
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%s: max CL/CD %.2f at alpha %.2f\n", rec.Name, rec.BestRatio, rec.BestAlpha)
//
// # Errors
//
// Missing header lines fall back to [UnknownAirfoil] and a nil Reynolds
// number and are listed in [Record.Missing]. Everything else that stops a file
// from producing a record ([ErrMalformedHeader], [ErrMalformedRow],
// [ErrEmptyTable], [ErrFileUnreadable]) is returned wrapped in a [ParseError].
package polar
