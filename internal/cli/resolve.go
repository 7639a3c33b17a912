// internal/cli/resolve.go
package cli

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/arc-language/glesbind"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Show the headers and libraries for the target in $GOOS",
	Long:  `Run the platform resolver for $GOOS and print the root header, include search path and libraries without generating anything.`,
	Args:  cobra.NoArgs,
	RunE:  runResolve,
}

func runResolve(cmd *cobra.Command, args []string) error {
	mgr := glesbind.NewManager(config)

	res, err := mgr.Resolve()
	if err != nil {
		return err
	}

	data := [][]string{
		{"target", res.Target},
		{"host", mgr.Host().String()},
		{"root header", res.RootHeader},
	}
	for i, dir := range res.IncludeDirs {
		data = append(data, []string{fmt.Sprintf("include %d", i), dir})
	}
	for _, lib := range res.Libraries {
		data = append(data, []string{"link", lib.LinkFlag()})
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"KEY", "VALUE"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()

	return nil
}
