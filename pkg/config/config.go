/*
Configuration for the Quinta do Lago tee time search.
Resolution order: built-in defaults, then .env file, then QDL_* environment
variables. Flag overrides are applied by the CLI after Load returns.
*/
package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/horeilly/qdl-tee-times/pkg/models"
)

const (
	defaultAPIURL  = "https://api.bookgolfquintadolago.com/api/v1/golf/availability/"
	defaultTimeout = 30 * time.Second

	defaultStartHour = 7
	defaultEndHour   = 16
	defaultPlayers   = 4
	defaultDays      = 6 // default window: today through today+6
)

// Config holds everything the core needs before a search runs. Built once
// by Load and never mutated afterwards.
type Config struct {
	APIURL  string
	Timeout time.Duration

	// Retry policy for the API client.
	MaxRetries    int
	BackoffBase   time.Duration
	RetryStatuses []int

	// Default search window, overridable per run.
	StartDate time.Time
	EndDate   time.Time
	StartHour int
	EndHour   int
	Players   int
}

// courseIDs lists the provider course identifiers in search order.
var courseIDs = []string{
	"35130-201-0000000001", // South Course
	"35130-201-0000000002", // North Course
	"35130-201-0000000003", // Laranjal
}

// courseAliases maps the CLI course names to provider identifiers.
var courseAliases = map[string]string{
	"south":    "35130-201-0000000001",
	"north":    "35130-201-0000000002",
	"laranjal": "35130-201-0000000003",
}

// courseNames maps provider course names to human-readable display names.
var courseNames = map[string]string{
	"Sul":      "South Course",
	"Norte":    "North Course",
	"Laranjal": "Laranjal",
}

// Load builds the configuration from defaults, an optional .env file and
// QDL_* environment variables. A malformed value is a configuration error.
func Load() (Config, error) {
	_ = godotenv.Load() // best effort; absence of .env is fine

	cfg := Config{
		APIURL:        envDefault("QDL_API_URL", defaultAPIURL),
		MaxRetries:    3,
		BackoffBase:   time.Second,
		RetryStatuses: []int{429, 500, 502, 503, 504},
		StartDate:     today(),
		EndDate:       today().AddDate(0, 0, defaultDays),
		StartHour:     defaultStartHour,
		EndHour:       defaultEndHour,
		Players:       defaultPlayers,
	}

	var err error
	if cfg.Timeout, err = envSeconds("QDL_API_TIMEOUT", defaultTimeout); err != nil {
		return cfg, err
	}
	if cfg.StartDate, err = envDate("QDL_START_DATE", cfg.StartDate); err != nil {
		return cfg, err
	}
	if cfg.EndDate, err = envDate("QDL_END_DATE", cfg.EndDate); err != nil {
		return cfg, err
	}
	if cfg.StartHour, err = envInt("QDL_START_HOUR", cfg.StartHour); err != nil {
		return cfg, err
	}
	if cfg.EndHour, err = envInt("QDL_END_HOUR", cfg.EndHour); err != nil {
		return cfg, err
	}
	if cfg.Players, err = envInt("QDL_PLAYERS", cfg.Players); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// DefaultSearchParams returns the search grid described by the config,
// covering all known courses.
func (c Config) DefaultSearchParams() models.SearchParameters {
	return models.SearchParameters{
		StartDate: c.StartDate,
		EndDate:   c.EndDate,
		StartHour: c.StartHour,
		EndHour:   c.EndHour,
		Players:   c.Players,
		CourseIDs: AllCourseIDs(),
	}
}

// AllCourseIDs returns a copy of the provider identifiers in search order.
func AllCourseIDs() []string {
	out := make([]string, len(courseIDs))
	copy(out, courseIDs)
	return out
}

// ResolveCourses maps CLI course names (south, north, laranjal) to provider
// identifiers. The "all" shortcut selects every known course.
func ResolveCourses(names []string) ([]string, error) {
	var ids []string
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "all" {
			return AllCourseIDs(), nil
		}
		id, ok := courseAliases[name]
		if !ok {
			return nil, &models.Error{Kind: models.KindValidation,
				Err: fmt.Errorf("unknown course %q (choose from %s or all)", name, strings.Join(CourseAliases(), ", "))}
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return AllCourseIDs(), nil
	}
	return ids, nil
}

// CourseAliases returns the CLI course names in stable order.
func CourseAliases() []string {
	out := make([]string, 0, len(courseAliases))
	for name := range courseAliases {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// CourseDisplayName maps a provider course name to its display name.
// Unrecognised names pass through unchanged.
func CourseDisplayName(name string) string {
	if display, ok := courseNames[name]; ok {
		return display
	}
	return name
}

// CourseID returns the provider identifier for a CLI course name.
func CourseID(alias string) (string, bool) {
	id, ok := courseAliases[strings.ToLower(alias)]
	return id, ok
}

func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func envDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, v)
	}
	return n, nil
}

func envSeconds(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive number of seconds, got %q", key, v)
	}
	return time.Duration(n) * time.Second, nil
}

func envDate(key string, fallback time.Time) (time.Time, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	d, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be YYYY-MM-DD, got %q", key, v)
	}
	return d, nil
}
