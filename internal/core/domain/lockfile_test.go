package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/buildinfo/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestLockfile_Nodes(t *testing.T) {
	lf := domain.NewLockfile("0.4")
	lf.AddNode(&domain.LockfileNode{UID: "2", Modified: true})
	lf.AddNode(&domain.LockfileNode{UID: "0"})
	lf.AddNode(&domain.LockfileNode{UID: "1", Modified: true})

	assert.Equal(t, "0.4", lf.Version)
	assert.Equal(t, 3, lf.Len())
	assert.Equal(t, []string{"0", "1", "2"}, lf.UIDs())

	modified := lf.Modified()
	require.Len(t, modified, 2)
	assert.Equal(t, "1", modified[0].UID)
	assert.Equal(t, "2", modified[1].UID)

	n, err := lf.Node("0")
	require.NoError(t, err)
	assert.Equal(t, "0", n.UID)
}

func TestLockfile_MissingNode(t *testing.T) {
	lf := domain.NewLockfile("0.4")

	_, err := lf.Node("42")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMissingNode))

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "42", zErr.Metadata()["uid"])
}
