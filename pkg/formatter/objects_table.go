package formatter

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/filehub/filehubctl/internal/models"
	"github.com/filehub/filehubctl/pkg/mask"
	"github.com/filehub/filehubctl/pkg/retention"
	"github.com/filehub/filehubctl/pkg/utils"
)

// PrintObjectsSummary prints the headline counts block above the
// object tables.
func PrintObjectsSummary(out io.Writer, summary models.ListingSummary) {
	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)

	fmt.Fprintln(w, "## BUCKET SUMMARY:")
	fmt.Fprintf(w, "Active file count:\t%d\n", summary.ActiveCount)
	fmt.Fprintf(w, "Total active file size:\t%s\n", utils.FormatMB(summary.ActiveBytes))
	fmt.Fprintf(w, "Total file count:\t%d\n", summary.TotalCount)
	fmt.Fprintf(w, "Total file size:\t%s (%s)\n",
		utils.FormatMB(summary.TotalBytes), utils.FormatBytes(summary.TotalBytes))

	w.Flush()
}

// PrintActiveObjectsTable prints the active objects with masked keys
// and colored countdown badges, soonest-to-expire first. The caller is
// expected to pass the output of retention.ActiveObjects.
func PrintActiveObjectsTable(out io.Writer, objects []models.ClassifiedObject) {
	fmt.Fprintln(out, "\n## ACTIVE TOKENS:")

	if len(objects) == 0 {
		fmt.Fprintln(out, "No active files.")
		return
	}

	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tSIZE\tEXPIRES")

	for _, obj := range objects {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			mask.Key(obj.Key),
			utils.FormatMB(obj.SizeBytes),
			expiryBadge(obj.RemainingSeconds))
	}

	w.Flush()
}

// PrintAllObjectsTable prints every object, including expired ones,
// labeled with the deletes-in countdown against the display horizon.
// The caller is expected to pass the output of retention.AllObjects.
func PrintAllObjectsTable(out io.Writer, objects []models.ClassifiedObject, horizon time.Duration) {
	fmt.Fprintln(out, "\n## ALL FILES (INCLUDING EXPIRED):")

	if len(objects) == 0 {
		fmt.Fprintln(out, "No files currently stored.")
		return
	}

	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tSIZE\tDELETES")

	for _, obj := range objects {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			mask.Key(obj.Key),
			utils.FormatMB(obj.SizeBytes),
			deletionText(retention.HorizonRemaining(obj, horizon)))
	}

	w.Flush()
}

// PrintDeletionLog prints the deletions recorded this session as
// literal log lines.
func PrintDeletionLog(out io.Writer, entries []models.DeletionLogEntry) {
	fmt.Fprintln(out, "\n## RECENT DELETIONS (LOGGED THIS SESSION):")

	if len(entries) == 0 {
		fmt.Fprintln(out, "No deletions recorded this session.")
		return
	}

	for _, entry := range entries {
		fmt.Fprintf(out, "- %s\n", entry)
	}
}
