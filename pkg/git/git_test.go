package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emt/commitsmith/pkg/classifier"
)

func TestParseNameStatus(t *testing.T) {
	output := "A\tsrc/auth/oauth.py\n" +
		"M\tREADME.md\n" +
		"D\tlegacy/old.py\n" +
		"R100\told/name.go\tnew/name.go\n" +
		"\n"

	files := parseNameStatus(output)
	require.Len(t, files, 4)

	assert.Equal(t, classifier.ChangedFile{Path: "src/auth/oauth.py", Status: classifier.StatusAdded}, files[0])
	assert.Equal(t, classifier.ChangedFile{Path: "README.md", Status: classifier.StatusModified}, files[1])
	assert.Equal(t, classifier.ChangedFile{Path: "legacy/old.py", Status: classifier.StatusDeleted}, files[2])

	// Renames keep the destination path and count as modifications
	assert.Equal(t, classifier.ChangedFile{Path: "new/name.go", Status: classifier.StatusModified}, files[3])
}

func TestParseNameStatus_Empty(t *testing.T) {
	assert.Empty(t, parseNameStatus(""))
	assert.Empty(t, parseNameStatus("\n\n"))
}

func TestParseLog(t *testing.T) {
	output := "abc123\n" +
		"feat(auth): add login\n" +
		"\n" +
		"Adds the login endpoint.\n" +
		"\n" +
		"---END---\n" +
		"def456\n" +
		"fix: handle empty input\n" +
		"\n" +
		"---END---\n"

	commits := parseLog(output)
	require.Len(t, commits, 2)

	assert.Equal(t, "abc123", commits[0].Hash)
	assert.Equal(t, "feat(auth): add login\n\nAdds the login endpoint.", commits[0].Message)

	assert.Equal(t, "def456", commits[1].Hash)
	assert.Equal(t, "fix: handle empty input", commits[1].Message)
}

func TestParseLog_Empty(t *testing.T) {
	assert.Empty(t, parseLog(""))
}

func TestStagedChanges_Empty(t *testing.T) {
	assert.True(t, (&StagedChanges{}).Empty())
	assert.False(t, (&StagedChanges{Diff: "+x\n"}).Empty())
	assert.False(t, (&StagedChanges{
		Files: []classifier.ChangedFile{{Path: "a", Status: classifier.StatusModified}},
	}).Empty())
}
