package sim

// Tour-average return rates that the opponent adjustment measures against.
const (
	AvgReturnVsFirst  = 0.35
	AvgReturnVsSecond = 0.50
)

// Config carries the opponent-adjustment settings. It is threaded through
// the simulation call chain as a value, so concurrent runs and tests can
// vary it without touching shared state.
type Config struct {
	// UseAdjustment shifts a server's raw win probability by how far the
	// returner's known return rate sits from the tour average.
	UseAdjustment bool

	// Baselines for the adjustment. Zero values mean "no baseline", so
	// build Configs through DefaultConfig unless a test needs otherwise.
	AvgReturnVsFirst  float64
	AvgReturnVsSecond float64
}

// DefaultConfig enables opponent adjustment against the standard tour
// averages.
func DefaultConfig() Config {
	return Config{
		UseAdjustment:     true,
		AvgReturnVsFirst:  AvgReturnVsFirst,
		AvgReturnVsSecond: AvgReturnVsSecond,
	}
}
