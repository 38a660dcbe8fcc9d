package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/horeilly/qdl-tee-times/pkg/config"
)

// Command to show the known courses and their provider identifiers
var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List the Quinta do Lago courses this tool can search",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Known courses:")
		for i, alias := range config.CourseAliases() {
			id, _ := config.CourseID(alias)
			fmt.Printf("%d) %-10s %s\n", i+1, alias, id)
		}
		fmt.Println(`Pass these to --courses, or "all" for every course.`)
	},
}

func init() {
	rootCmd.AddCommand(coursesCmd)
}
