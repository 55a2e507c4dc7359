package core

import (
	"fmt"
	"strings"
)

// UnknownModuleError is returned when a name is not a known module.
type UnknownModuleError struct {
	Name string
}

func (e *UnknownModuleError) Error() string {
	return fmt.Sprintf("unknown JavaFX module: %s", e.Name)
}

// InvalidModuleNamesError lists every requested module name that is not
// known, in request order.
type InvalidModuleNamesError struct {
	Offenders []string
}

func (e *InvalidModuleNamesError) Error() string {
	return fmt.Sprintf("found one or more invalid JavaFX module names: [%s]", strings.Join(e.Offenders, ", "))
}

type UnsupportedPlatformError struct {
	ProbeID   string
	Supported []string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf(
		"unsupported JavaFX platform found: '%s'; supported platforms are '%s'",
		e.ProbeID,
		strings.Join(e.Supported, "', '"),
	)
}

type InvalidPlatformStringError struct {
	Value string
}

func (e *InvalidPlatformStringError) Error() string {
	return fmt.Sprintf("invalid JavaFX platform: %q", e.Value)
}

// MissingLaunchTargetError means there is no process to rewrite, usually
// because the application plugin providing it was not applied.
type MissingLaunchTargetError struct {
	Target string
}

func (e *MissingLaunchTargetError) Error() string {
	if e.Target == "" {
		return "launch target not found; make sure the application plugin is applied"
	}
	return fmt.Sprintf("launch target %q not found; make sure the application plugin is applied", e.Target)
}
