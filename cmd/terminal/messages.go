package main

// Indicates that configuration and the long-lived clients are ready.
type consoleReadyMsg struct {
	deps *consoleDeps
	err  error
}

// Carries a finished review document, already rendered for the terminal.
type reviewDoneMsg struct {
	target   string
	document string
}

// Indicates that a review was published as the tracked PR comment.
type reviewPostedMsg struct {
	target string
}

// A generic error message for reporting failures from commands.
type errorMsg struct{ err error }

func (e errorMsg) Error() string {
	return e.err.Error()
}
