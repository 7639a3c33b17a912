// internal/cli/env.go
package cli

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List recognized environment variables",
	Long:  `List the environment variables glesbind reads and their effective values after the config file is applied.`,
	Args:  cobra.NoArgs,
	RunE:  runEnv,
}

func runEnv(cmd *cobra.Command, args []string) error {
	var data [][]string
	for _, v := range config.EnvVars() {
		data = append(data, []string{v.Name, v.Value, v.Description})
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"NAME", "VALUE", "DESCRIPTION"})
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
