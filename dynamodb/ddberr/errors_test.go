package ddberr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	t.Run("user error survives wrapping", func(t *testing.T) {
		err := fmt.Errorf("create table: %w", User("parse keys", "bad key %q", "a,b,c"))
		assert.Equal(t, KindUser, KindOf(err))
		assert.True(t, Is(err, KindUser))
		assert.False(t, Is(err, KindInternal))
	})
	t.Run("plain errors count as upstream", func(t *testing.T) {
		assert.Equal(t, KindUpstream, KindOf(errors.New("boom")))
	})
	t.Run("internal", func(t *testing.T) {
		err := Internal("resolve key", "partition key missing")
		assert.Equal(t, KindInternal, KindOf(err))
		assert.Equal(t, "resolve key: partition key missing", err.Error())
	})
}

func TestUpstream(t *testing.T) {
	require.NoError(t, Upstream("describe", nil))

	apiErr := &smithy.GenericAPIError{Code: "BackupInUseException", Message: "in use"}
	err := Upstream("restore table from backup", apiErr)
	assert.Equal(t, KindUpstream, KindOf(err))
	assert.Equal(t, "BackupInUseException", APICode(err))
	assert.ErrorIs(t, err, apiErr)
	assert.Equal(t, "", APICode(errors.New("plain")))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(User("", "bad output format")))
	assert.Equal(t, 1, ExitCode(Upstream("list tables", errors.New("denied"))))
	assert.Equal(t, 1, ExitCode(Internal("", "broken")))
}
