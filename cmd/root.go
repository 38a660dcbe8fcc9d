package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/horeilly/qdl-tee-times/pkg/api"
	"github.com/horeilly/qdl-tee-times/pkg/config"
	"github.com/horeilly/qdl-tee-times/pkg/models"
	"github.com/horeilly/qdl-tee-times/pkg/output"
	"github.com/horeilly/qdl-tee-times/pkg/search"
)

// Flag variables
var (
	startDateFlag string
	endDateFlag   string
	startHourFlag int
	endHourFlag   int
	playersFlag   int
	coursesFlag   []string
	outputFlag    string
	displayFlag   bool
	verboseMode   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "qdl-tee-times",
	Short: "Find available tee times at Quinta do Lago",
	Long: `qdl-tee-times searches the Quinta do Lago booking API across a range of
dates, hours and courses and collects every available tee time into one
deduplicated, sorted result set, saved to .csv, .xlsx or .json or shown
on the console.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(cmd.Context())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseMode, "verbose", "v", false, "Write debug logs to the config directory")

	rootCmd.Flags().StringVar(&startDateFlag, "start-date", "", "Start date (YYYY-MM-DD)")
	rootCmd.Flags().StringVar(&endDateFlag, "end-date", "", "End date, inclusive (YYYY-MM-DD)")
	rootCmd.Flags().IntVar(&startHourFlag, "start-hour", -1, "Start hour (0-23)")
	rootCmd.Flags().IntVar(&endHourFlag, "end-hour", -1, "End hour, inclusive (0-23)")
	rootCmd.Flags().IntVarP(&playersFlag, "players", "p", 0, "Number of players (1-4)")
	rootCmd.Flags().StringSliceVarP(&coursesFlag, "courses", "c", []string{"all"}, "Courses to search (south, north, laranjal or all)")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file (.csv, .xlsx or .json)")
	rootCmd.Flags().BoolVarP(&displayFlag, "display", "d", false, "Browse the results interactively")
}

func runSearch(ctx context.Context) error {
	logFile, err := setupLogging()
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	if logFile != nil {
		defer logFile.Close()
	} else {
		log.SetOutput(io.Discard) // keep stdout clean unless --verbose
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	params, err := buildParams(cfg)
	if err != nil {
		return err
	}
	if err := params.Validate(); err != nil {
		return err
	}

	client := api.New(cfg)
	defer client.Close()

	fmt.Printf("Searching %d time slots...\n", params.GridSize())

	res, err := searchWithProgress(ctx, client, params)
	if err != nil {
		return err
	}

	fmt.Printf("\nFound %s\n", successStyle.Render(fmt.Sprintf("%d available tee times", len(res.Records))))
	if res.Failed > 0 {
		fmt.Println(errorStyle.Render(fmt.Sprintf("%d of %d requests failed and were skipped", res.Failed, res.Cells)))
	}

	if outputFlag != "" {
		if err := output.Save(res.Records, outputFlag); err != nil {
			return err
		}
		fmt.Printf("Saved results to %s\n", outputFlag)
	}

	if len(res.Records) == 0 {
		fmt.Println("No tee times found for the specified criteria.")
		return nil
	}

	if displayFlag {
		return pageRecords(res.Records)
	}
	if outputFlag == "" {
		fmt.Println("\nAvailable tee times:")
		output.Render(os.Stdout, res.Records)
	}
	return nil
}

// buildParams layers the CLI flags over the configured defaults.
func buildParams(cfg config.Config) (models.SearchParameters, error) {
	params := cfg.DefaultSearchParams()

	if startDateFlag != "" {
		d, err := time.Parse("2006-01-02", startDateFlag)
		if err != nil {
			return params, &models.Error{Kind: models.KindValidation, Err: fmt.Errorf("invalid --start-date %q, use YYYY-MM-DD", startDateFlag)}
		}
		params.StartDate = d
	}
	if endDateFlag != "" {
		d, err := time.Parse("2006-01-02", endDateFlag)
		if err != nil {
			return params, &models.Error{Kind: models.KindValidation, Err: fmt.Errorf("invalid --end-date %q, use YYYY-MM-DD", endDateFlag)}
		}
		params.EndDate = d
	}
	if startHourFlag >= 0 {
		params.StartHour = startHourFlag
	}
	if endHourFlag >= 0 {
		params.EndHour = endHourFlag
	}
	if playersFlag > 0 {
		params.Players = playersFlag
	}

	ids, err := config.ResolveCourses(coursesFlag)
	if err != nil {
		return params, err
	}
	params.CourseIDs = ids

	return params, nil
}

// searchWithProgress runs the grid search while a progress bar renders.
// The orchestrator's progress callback feeds the bubbletea program; the bar
// quits on its own once the final cell reports in.
func searchWithProgress(ctx context.Context, client search.Fetcher, params models.SearchParameters) (search.Result, error) {
	p := tea.NewProgram(newProgressBar(params.GridSize()))

	var (
		res       search.Result
		searchErr error
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		res, searchErr = search.Run(ctx, client, params, func(done, total int) {
			p.Send(cellsDoneMsg(done))
		})
		if searchErr != nil {
			p.Quit() // bail out early, the bar will never reach its target
		}
	}()

	if _, err := p.Run(); err != nil {
		<-done
		return search.Result{}, fmt.Errorf("progress display failed: %w", err)
	}
	<-done
	return res, searchErr
}
