package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"namedic/pkg/yomi"
)

// prefixesCmd represents the prefixes command
var prefixesCmd = &cobra.Command{
	Use:   "prefixes",
	Short: "Print the reading prefix index",
	Long:  `Print the 63 registered reading prefixes and their ordinals in index order.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, symbol := range yomi.All() {
			ordinal, err := yomi.Lookup(symbol)
			if err != nil {
				return err
			}
			fmt.Printf("%s  %s\n", ordinal, symbol)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(prefixesCmd)
}
