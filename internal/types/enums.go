package types

type OSFamily string

const (
	OSFamilyLinux   OSFamily = "linux"
	OSFamilyWindows OSFamily = "windows"
	OSFamilyMacOS   OSFamily = "macos"
)

type Arch string

const (
	ArchX8664   Arch = "x86-64"
	ArchAarch64 Arch = "aarch64"
)

type DeclarationKind string

const (
	DeclarationKindRemote DeclarationKind = "remote"
	DeclarationKindLocal  DeclarationKind = "local"
)

type MatchKind string

const (
	MatchKindNone     MatchKind = ""
	MatchKindPlatform MatchKind = "platform"
	MatchKindBare     MatchKind = "bare"
)

// RewriteOutcome is the terminal state chosen for a launch target.
type RewriteOutcome string

const (
	RewriteOutcomeSkipped     RewriteOutcome = "skipped"
	RewriteOutcomeNamedModule RewriteOutcome = "named-module"
	RewriteOutcomeDelegated   RewriteOutcome = "delegated"
	RewriteOutcomeRewritten   RewriteOutcome = "rewritten"
)
