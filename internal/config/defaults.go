package config

const (
	defaultConfigPath    = "~/.config/lexstat/config.toml"
	defaultInputName     = "text.txt"
	defaultTopWords      = 10
	defaultTopNGrams     = 5
	defaultHistogramBins = 20
	defaultChartMode     = ChartModeTerminal
	defaultChartWidth    = 1200
	defaultChartHeight   = 500
	defaultChartBarWidth = 40
	defaultOutputFormat  = FormatText
	defaultLogFormat     = "console"
	defaultLogLevel      = "warn"
)

// Chart modes.
const (
	ChartModeTerminal = "terminal"
	ChartModePNG      = "png"
	ChartModeNone     = "none"
)

// Output formats.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Analysis: Analysis{
			TopWords:      defaultTopWords,
			TopNGrams:     defaultTopNGrams,
			HistogramBins: defaultHistogramBins,
		},
		Chart: Chart{
			Mode:     defaultChartMode,
			Width:    defaultChartWidth,
			Height:   defaultChartHeight,
			BarWidth: defaultChartBarWidth,
		},
		Output: Output{
			Format: defaultOutputFormat,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
