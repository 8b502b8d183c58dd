package constant

const (
	StatsTempFileSuffix = ".stats.tmp"
	StatsFileSuffix     = ".stats"
	StatsDir            = "stats"
	EndpointOverride    = "endpoint_override"
	LatestStatsVersion  = -1
)
