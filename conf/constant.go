package conf

const (
	//ISO-8601, carried by every response
	DateTimePattern = "2006-01-02T15:04:05Z07:00"
	//compact stamp used for charge/payment-method identifiers
	DateTimePatternCompact = "20060102150405"

	RunModeDev     = "dev"
	RunModeTest    = "test"
	RunModeRelease = "release"
)
