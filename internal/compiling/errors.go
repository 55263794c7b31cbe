package compiling

import "fmt"

// EngineUnavailableError is returned when the requested engine, or every
// engine in the auto probe order, is absent from the environment.
type EngineUnavailableError struct {
	Engine Engine
}

func (e *EngineUnavailableError) Error() string {
	if e.Engine == EngineAuto {
		return "no PDF compilation engine available. Install one of:\n" +
			"  - texlive-xetex: sudo apt install texlive-xetex\n" +
			"  - Docker: https://docs.docker.com/get-docker/"
	}
	return fmt.Sprintf("compilation engine %q is not available", e.Engine)
}

// CompilationError represents an external compiler run that failed or
// could not be attempted. LogOutput carries the captured diagnostics.
type CompilationError struct {
	Message   string
	LogOutput string
	Cause     error
}

func (e *CompilationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("compilation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("compilation error: %s", e.Message)
}

func (e *CompilationError) Unwrap() error {
	return e.Cause
}
