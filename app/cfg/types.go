package cfg

type Cfg struct {
	// Acquisition configuration
	SourcesDir    string
	Timeout       int
	RetryCount    int
	RequestDelay  int
	ExpectedSeats int

	// Export configuration
	OutputFile string
	JSONFile   string

	// Serve mode configuration
	Serve           bool
	Port            string
	APIAccessKey    string
	RefreshInterval int

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
