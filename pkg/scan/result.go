package scan

type Severity int

const (
	Success Severity = iota
	Warning
	Fatal
)

func (s Severity) String() string {
	switch s {
	case Success:
		return "success"
	case Warning:
		return "warning"
	case Fatal:
		return "fatal"
	}
	return "unknown"
}

// Reason identifies why a run ended the way it did. The numeric exit code
// a shell sees is mapped from this at the process boundary, not here.
type Reason int

const (
	ReasonNone Reason = iota

	// Some, but not all, adapters failed their post-scan network fetch.
	ReasonPartialFetchFailure

	// The management session could not be opened. Nothing was scanned.
	ReasonSessionOpenFailed

	// Adapter enumeration itself errored.
	ReasonEnumerateFailed

	// Enumeration succeeded but found zero wireless adapters.
	ReasonNoAdapters

	// Every adapter's post-scan network fetch failed.
	ReasonAllFetchesFailed
)

// Result is the outcome of one run.
type Result struct {
	Severity Severity
	Reason   Reason
}

var (
	resultOK = Result{Severity: Success, Reason: ReasonNone}
)

func fatal(r Reason) Result {
	return Result{Severity: Fatal, Reason: r}
}
