package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appErrors "github.com/campusware/planner-api/pkg/errors"
)

const catalogFixture = `CSC 216,Software Development Fundamentals,001,3,sesmith5,MW,1330,1445
CSC 216,Software Development Fundamentals,002,3,ixdoming,MW,1120,1310
CSC 226,Discrete Mathematics for Computer Scientists,001,3,tmbarnes,MWF,935,1025
CSC 491,Senior Design,001,3,jsmith,A
garbage line
`

func newTestRepository(t *testing.T) *CatalogRepository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "course_records.txt")
	require.NoError(t, os.WriteFile(path, []byte(catalogFixture), 0o644))

	repo, err := NewCatalogRepository(path, zap.NewNop())
	require.NoError(t, err)
	return repo
}

func TestNewCatalogRepositoryLoads(t *testing.T) {
	repo := newTestRepository(t)

	assert.Equal(t, 4, repo.Size())
	assert.Equal(t, 1, repo.SkippedLines())
}

func TestNewCatalogRepositoryMissingFile(t *testing.T) {
	_, err := NewCatalogRepository(filepath.Join(t.TempDir(), "absent.txt"), zap.NewNop())
	assert.ErrorIs(t, err, appErrors.ErrCatalogUnavailable)
}

func TestCatalogRepositoryFind(t *testing.T) {
	repo := newTestRepository(t)

	c, ok := repo.Find("CSC 216", "002")
	require.True(t, ok)
	assert.Equal(t, "ixdoming", c.InstructorID())

	_, ok = repo.Find("CSC 216", "003")
	assert.False(t, ok)

	_, ok = repo.Find("ZZZ 999", "001")
	assert.False(t, ok)
}

func TestCatalogRepositoryListPreservesOrder(t *testing.T) {
	repo := newTestRepository(t)

	list := repo.List()
	require.Len(t, list, 4)
	assert.Equal(t, "CSC 216", list[0].Name())
	assert.Equal(t, "001", list[0].Section())
	assert.Equal(t, "CSC 491", list[3].Name())
}
