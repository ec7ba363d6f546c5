// pkg/verify/verify_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Real filesystem (symlinks)
// PURPOSE: Test the read-only verification scan

package verify_test

import (
	"path/filepath"
	"testing"

	"github.com/seshanpillay25/contexthub/pkg/filesystem"
	"github.com/seshanpillay25/contexthub/pkg/testutil"
	"github.com/seshanpillay25/contexthub/pkg/types"
	"github.com/seshanpillay25/contexthub/pkg/verify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify_CleanCheckout(t *testing.T) {
	p := testutil.NewProject(t)

	report := verify.Verify(filesystem.NewOS(), p.Root, p.Config)

	assert.False(t, report.MasterExists)
	assert.False(t, report.AuxExists)
	require.Len(t, report.Links, 5)
	for _, link := range report.Links {
		assert.Equal(t, types.KindAbsent, link.Kind, link.Link.Path)
	}
	assert.Equal(t, 6, report.Failures())
	assert.False(t, report.OK())

	assert.Empty(t, testutil.ListDir(t, p.Root), "verification must not write")
}

func TestVerify_MixedKinds(t *testing.T) {
	testutil.SkipOnWindows(t)
	p := testutil.NewProject(t)
	master := testutil.CreateFile(t, p.Root, p.Config.Files.Master, "master")

	links := p.LinkPaths()
	testutil.CreateSymlink(t, master, links[0])
	testutil.CreateSymlink(t, master, links[1])
	testutil.CreateFile(t, p.Root, p.Config.Links[2].Path, "master")
	testutil.CreateFile(t, p.Root, p.Config.Links[3].Path, "master")
	testutil.CreateSymlink(t, master, links[4])

	report := verify.Verify(filesystem.NewOS(), p.Root, p.Config)

	assert.True(t, report.MasterExists)
	assert.False(t, report.AuxExists, "missing aux file is only a warning")
	assert.True(t, report.OK())

	assert.Equal(t, types.KindSymlink, report.Links[0].Kind)
	assert.Equal(t, master, report.Links[0].Target)
	assert.Equal(t, types.KindCopy, report.Links[2].Kind)
	assert.Empty(t, report.Links[2].Target)
}

func TestVerify_MissingTargetFails(t *testing.T) {
	p := testutil.NewProject(t)
	testutil.CreateFile(t, p.Root, p.Config.Files.Master, "master")
	testutil.CreateFile(t, p.Root, p.Config.Files.Aux, "model: gpt-4\n")
	for _, link := range p.Config.Links[1:] {
		testutil.CreateFile(t, p.Root, link.Path, "master")
	}

	report := verify.Verify(filesystem.NewOS(), p.Root, p.Config)

	assert.True(t, report.AuxExists)
	assert.Equal(t, 1, report.Failures())
	assert.False(t, report.OK())
	assert.Equal(t, "CLAUDE.md", report.Links[0].Link.Path)
	assert.Equal(t, types.KindAbsent, report.Links[0].Kind)
}

func TestVerify_DanglingSymlinkCountsAsMissing(t *testing.T) {
	testutil.SkipOnWindows(t)
	p := testutil.NewProject(t)
	testutil.CreateFile(t, p.Root, p.Config.Files.Master, "master")
	for _, link := range p.Config.Links[1:] {
		testutil.CreateFile(t, p.Root, link.Path, "master")
	}
	testutil.CreateSymlink(t, filepath.Join(p.Root, "gone.md"), p.LinkPaths()[0])

	report := verify.Verify(filesystem.NewOS(), p.Root, p.Config)

	assert.True(t, report.Links[0].Dangling)
	assert.Equal(t, types.KindAbsent, report.Links[0].Kind)
	assert.False(t, report.OK())
}
