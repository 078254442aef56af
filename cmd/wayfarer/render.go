package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/poiesic/wayfarer/core"
)

// renderRecommendations writes a tabular listing of results, best first.
func renderRecommendations(out io.Writer, recs []*core.Recommendation) {
	if len(recs) == 0 {
		fmt.Fprintln(out, "No matches found. Try loosening your filters.")
		return
	}

	fmt.Fprintln(out, "Top Suggestions")
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DESTINATION\tPACKAGE\tBUDGET\tNIGHTS\tPRICE\tWHY IT FITS")

	for _, rec := range recs {
		dest := rec.Destination
		pkg := rec.Package

		destination := dest.Name
		if dest.Country != "" {
			destination += " (" + dest.Country + ")"
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
			destination, pkg.Name, pkg.Budget, pkg.Nights,
			formatPrice(pkg.Price), rationale(rec))
	}

	w.Flush()
}

func formatPrice(price *float64) string {
	if price == nil {
		return "-"
	}
	return strconv.FormatFloat(*price, 'f', -1, 64)
}

// rationale summarizes why a package was suggested. Package tags win over
// destination tags, mirroring how the score treats them.
func rationale(rec *core.Recommendation) string {
	tags := rec.Package.Activities
	if tags == "" {
		tags = rec.Destination.Activities
	}
	return "climate:" + rec.Destination.Climate +
		" tags:" + tags +
		" score:" + strconv.FormatFloat(rec.Score, 'f', -1, 64)
}
