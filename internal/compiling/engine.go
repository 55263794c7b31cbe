// Package compiling turns rendered LaTeX sources into PDF documents by
// invoking an external typesetting engine.
package compiling

import (
	"fmt"
	"os/exec"
)

// Engine identifies a compilation backend.
type Engine string

const (
	// EngineAuto resolves to the first available concrete engine.
	EngineAuto Engine = "auto"
	// EngineXeLaTeX uses a locally installed xelatex.
	EngineXeLaTeX Engine = "xelatex"
	// EngineDocker runs xelatex inside a texlive container.
	EngineDocker Engine = "docker"
	// EngineDockerSudo runs the container through sudo, for systems
	// where the docker socket needs elevated privileges.
	EngineDockerSudo Engine = "docker-sudo"
)

// Engines lists every accepted engine preference.
func Engines() []Engine {
	return []Engine{EngineAuto, EngineXeLaTeX, EngineDocker, EngineDockerSudo}
}

// ParseEngine validates an engine name from the CLI or a config file.
func ParseEngine(s string) (Engine, error) {
	for _, e := range Engines() {
		if s == string(e) {
			return e, nil
		}
	}
	return "", fmt.Errorf("unknown compilation engine %q (expected auto, xelatex, docker, or docker-sudo)", s)
}

func (e Engine) String() string {
	return string(e)
}

// autoProbeOrder is the fixed priority order auto resolution walks: the
// local toolchain first, then the containerized one. New engines are
// supported by appending to this table.
var autoProbeOrder = []Engine{EngineXeLaTeX, EngineDocker}

// tool returns the executable whose presence makes the engine usable.
func (e Engine) tool() string {
	switch e {
	case EngineXeLaTeX:
		return "xelatex"
	case EngineDocker, EngineDockerSudo:
		return "docker"
	}
	return ""
}

// Available reports whether the engine's toolchain is present in the
// current environment. Results are never cached; every call re-probes,
// so an engine installed mid-process is picked up.
func (e Engine) Available() bool {
	tool := e.tool()
	if tool == "" {
		return false
	}
	_, err := exec.LookPath(tool)
	return err == nil
}

// Resolve maps the auto preference to the first available concrete
// engine, and checks availability of explicitly named ones. The auto
// value is never persisted; resolution happens at every invocation.
func Resolve(pref Engine) (Engine, error) {
	if pref == EngineAuto {
		for _, e := range autoProbeOrder {
			if e.Available() {
				return e, nil
			}
		}
		return "", &EngineUnavailableError{Engine: EngineAuto}
	}
	if !pref.Available() {
		return "", &EngineUnavailableError{Engine: pref}
	}
	return pref, nil
}
