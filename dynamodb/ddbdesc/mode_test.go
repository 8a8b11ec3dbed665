package ddbdesc

import (
	"testing"

	"github.com/acksell/dynein/dynamodb/ddberr"
	"github.com/acksell/dynein/dynamodb/schema"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyMode(t *testing.T) {
	assert.Equal(t, schema.ModeProvisioned, ClassifyMode(nil), "missing summary predates on-demand")
	assert.Equal(t, schema.ModeOnDemand, ClassifyMode(onDemand()))
	assert.Equal(t, schema.ModeProvisioned, ClassifyMode(&types.BillingModeSummary{BillingMode: types.BillingModeProvisioned}))
	assert.Equal(t, schema.ModeProvisioned, ClassifyMode(&types.BillingModeSummary{}))
}

func TestExtractCapacity(t *testing.T) {
	t.Run("on-demand ignores throughput", func(t *testing.T) {
		for _, td := range []*types.ProvisionedThroughputDescription{nil, throughput(0, 0), throughput(7, 9), {}} {
			c, err := ExtractCapacity(schema.ModeOnDemand, td)
			require.NoError(t, err)
			assert.Nil(t, c)
		}
	})
	t.Run("provisioned copies units", func(t *testing.T) {
		c, err := ExtractCapacity(schema.ModeProvisioned, throughput(7, 9))
		require.NoError(t, err)
		assert.Equal(t, &schema.Capacity{ReadUnits: 7, WriteUnits: 9}, c)
	})
	t.Run("provisioned without throughput", func(t *testing.T) {
		_, err := ExtractCapacity(schema.ModeProvisioned, nil)
		require.Error(t, err)
		assert.True(t, ddberr.Is(err, ddberr.KindInternal))
	})
	t.Run("provisioned with missing units", func(t *testing.T) {
		_, err := ExtractCapacity(schema.ModeProvisioned, &types.ProvisionedThroughputDescription{})
		require.Error(t, err)
		assert.True(t, ddberr.Is(err, ddberr.KindInternal))
	})
}
