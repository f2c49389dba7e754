package sampling

import (
	"strconv"
	"strings"
	"time"
)

// TimestampLayout formats the run start time in the CSV filename.
const TimestampLayout = "2006-01-02_15-04-05"

// Invocation is one planned launch of the sampling program.
type Invocation struct {
	Program   string
	Args      []string
	CSVFile   string
	Host      string
	StartedAt time.Time
}

// Filename returns the CSV file name for a run on host starting at t.
// Runs on the same host within the same second produce the same name.
func Filename(host string, t time.Time, interval, duration int) string {
	return "sample_metrics_" + host + "_" + t.Format(TimestampLayout) + "_" +
		strconv.Itoa(interval) + "_" + strconv.Itoa(duration) + ".csv"
}

// Args returns the argument list passed to the sampling program.
func Args(interval, duration int, csvfile, sampler string) []string {
	return []string{
		"-v",
		"-I", strconv.Itoa(interval),
		"-D", strconv.Itoa(duration),
		"-c", csvfile,
		sampler,
	}
}

// CommandLine renders the invocation as a single space-separated line.
func (inv Invocation) CommandLine() string {
	return strings.Join(append([]string{inv.Program}, inv.Args...), " ")
}
