package probe

// HTTP status code constants.
const (
	StatusOK = 200
)

// Worker configuration constants.
const (
	WorkerChannelMultiplier = 2
)

// Grid configuration constants.
const (
	DefaultStepMinutes = 30
	minutesPerDay      = 24 * 60
)

// Runner configuration constants.
const (
	PercentageMultiplier = 100
	directoryPermission  = 0750
)
