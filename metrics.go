package datefmt

// Metrics reported to stats.Tracker, labelled with cache name.
const (
	MetricHit         = "datefmt_hit"
	MetricBuild       = "datefmt_build"
	MetricBuildFailed = "datefmt_build_failed"
)
