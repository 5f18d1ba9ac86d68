package classifier

// FileStatus is the git name-status letter for a staged file.
type FileStatus string

const (
	StatusAdded    FileStatus = "A"
	StatusModified FileStatus = "M"
	StatusDeleted  FileStatus = "D"
)

// ChangedFile is a single staged file as reported by git.
type ChangedFile struct {
	Path   string     `json:"path"`
	Status FileStatus `json:"status"`
}

// CommitType is a conventional commit type.
type CommitType string

const (
	TypeFeat     CommitType = "feat"
	TypeFix      CommitType = "fix"
	TypeRefactor CommitType = "refactor"
	TypePerf     CommitType = "perf"
	TypeStyle    CommitType = "style"
	TypeTest     CommitType = "test"
	TypeDocs     CommitType = "docs"
	TypeBuild    CommitType = "build"
	TypeChore    CommitType = "chore"
)

// typePriority is the fixed tie-break order when multiple types score equally.
// Earlier entries win.
var typePriority = []CommitType{
	TypeFeat,
	TypeFix,
	TypeRefactor,
	TypePerf,
	TypeStyle,
	TypeTest,
	TypeDocs,
	TypeBuild,
	TypeChore,
}

// Result holds the inferred commit message components for a set of staged
// changes. Type is always set (chore when nothing matched), Confidence is
// always in [0, 1], and BreakingReason is non-empty exactly when Breaking
// is true.
type Result struct {
	Type           CommitType `json:"type"`
	Scope          string     `json:"scope,omitempty"`
	Description    string     `json:"description"`
	Confidence     float64    `json:"confidence"`
	Breaking       bool       `json:"breaking"`
	BreakingReason string     `json:"breaking_reason,omitempty"`
	FilesChanged   int        `json:"files_changed"`
}
