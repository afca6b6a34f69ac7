package buildinfo

import (
	"os"
	"runtime"
	"time"
)

// ServiceName identifies this binary in logs and health responses.
const ServiceName = "interaction-analytics"

// Build information variables set via ldflags during compilation
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

var startTime = time.Now()

// Info contains build and runtime information
type Info struct {
	Service   string        `json:"service" example:"interaction-analytics"`
	Version   string        `json:"version" example:"v1.0.0"`
	Commit    string        `json:"commit" example:"abc123def456"`
	BuildDate string        `json:"buildDate" example:"2026-10-16T10:00:00Z"`
	GoVersion string        `json:"goVersion" example:"go1.25.4"`
	Hostname  string        `json:"hostname" example:"analytics-01"`
	StartedAt time.Time     `json:"startedAt"`
	Uptime    time.Duration `json:"uptime" swaggertype:"integer" example:"3600000000000"`
}

// GetInfo returns build information with the uptime measured at now.
func GetInfo(now time.Time) Info {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	return Info{
		Service:   ServiceName,
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Hostname:  hostname,
		StartedAt: startTime,
		Uptime:    now.Sub(startTime),
	}
}

// MarkStarted records the process start time used for uptime.
func MarkStarted(t time.Time) {
	startTime = t
}
