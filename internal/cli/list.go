package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/glorpus-work/portkit/pkg/database"
	"github.com/glorpus-work/portkit/pkg/listing"
)

// FullDescriptionFlag disables truncation of the report columns.
const FullDescriptionFlag = "x-full-desc"

// notice highlights informational lines printed instead of a report.
var notice = color.New(color.FgYellow)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	var fullDescription bool

	cmd := &cobra.Command{
		Use:   "list [substring]",
		Short: "List installed packages",
		Long: `List installed packages from the local database, sorted by name.

The argument should be a substring to search for, or no argument to display
all installed libraries. Matching ignores ASCII case.

Example:
  portkit list png`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv := listing.Invocation{FullDescription: fullDescription}
			if len(args) == 1 {
				inv.Filter = args[0]
				inv.HasFilter = true
			}
			return runList(cmd, inv)
		},
	}

	cmd.Flags().BoolVar(&fullDescription, FullDescriptionFlag, false, "Do not truncate long text")

	return cmd
}

func runList(cmd *cobra.Command, inv listing.Invocation) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	loader := database.NewFileLoader(cfg.GetDatabasePath())
	lister := listing.NewLister(loader, cmd.OutOrStdout(), listing.WithNoticePrinter(printNotice))

	if _, err := lister.Run(cmd.Context(), inv); err != nil {
		return err
	}
	return nil
}

func printNotice(w io.Writer, line string) error {
	_, err := fmt.Fprintln(w, notice.Sprint(line))
	return err
}
