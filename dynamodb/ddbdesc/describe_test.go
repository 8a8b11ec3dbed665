package ddbdesc

import (
	"testing"
	"time"

	"github.com/acksell/dynein/dynamodb/ddberr"
	"github.com/acksell/dynein/dynamodb/schema"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimestamp(t *testing.T) {
	assert.Equal(t, "1970-01-01T00:00:00+00:00", FormatTimestamp(time.Unix(0, 0)))
	tokyo := time.FixedZone("JST", 9*60*60)
	assert.Equal(t, "2020-08-14T13:16:07+00:00", FormatTimestamp(created.In(tokyo)))
}

func TestExtractStream(t *testing.T) {
	assert.Nil(t, ExtractStream(nil, nil))
	assert.Nil(t, ExtractStream(nil, &types.StreamSpecification{StreamViewType: types.StreamViewTypeNewImage}))

	got := ExtractStream(aws.String("arn1"), &types.StreamSpecification{
		StreamEnabled:  aws.Bool(true),
		StreamViewType: types.StreamViewTypeNewImage,
	})
	require.NotNil(t, got)
	assert.Equal(t, "arn1 (NEW_IMAGE)", *got)
}

func TestNormalize_Provisioned(t *testing.T) {
	got, err := Normalize("us-west-2", musicTable())
	require.NoError(t, err)

	assert.Equal(t, &schema.TableDescription{
		Name:   "Music",
		Region: "us-west-2",
		Status: "ACTIVE",
		Schema: schema.KeyPair{
			PartitionKey: "Artist (S)",
			SortKey:      aws.String("SongTitle (S)"),
		},
		Mode:     schema.ModeProvisioned,
		Capacity: &schema.Capacity{ReadUnits: 10, WriteUnits: 5},
		GSI: []schema.SecondaryIndex{{
			Name:     "by-year",
			Schema:   schema.KeyPair{PartitionKey: "Year (N)"},
			Capacity: &schema.Capacity{ReadUnits: 3, WriteUnits: 2},
		}},
		LSI: []schema.SecondaryIndex{{
			Name: "artist-year",
			Schema: schema.KeyPair{
				PartitionKey: "Artist (S)",
				SortKey:      aws.String("Year (N)"),
			},
		}},
		Count:     42,
		SizeBytes: 1024,
		CreatedAt: "2020-08-14T13:16:07+00:00",
	}, got)
}

func TestNormalize_OnDemand(t *testing.T) {
	desc := musicTable()
	desc.BillingModeSummary = onDemand()
	desc.LatestStreamArn = aws.String("arn:aws:dynamodb:us-west-2:111111111111:table/Music/stream/2020")
	desc.StreamSpecification = &types.StreamSpecification{StreamEnabled: aws.Bool(true), StreamViewType: types.StreamViewTypeKeysOnly}

	got, err := Normalize("us-west-2", desc)
	require.NoError(t, err)
	assert.Equal(t, schema.ModeOnDemand, got.Mode)
	assert.Nil(t, got.Capacity)
	for _, idx := range append(got.GSI, got.LSI...) {
		assert.Nil(t, idx.Capacity, idx.Name)
	}
	require.NotNil(t, got.Stream)
	assert.Equal(t, "arn:aws:dynamodb:us-west-2:111111111111:table/Music/stream/2020 (KEYS_ONLY)", *got.Stream)
}

func TestNormalize_NoIndexes(t *testing.T) {
	desc := musicTable()
	desc.GlobalSecondaryIndexes = nil
	desc.LocalSecondaryIndexes = nil
	got, err := Normalize("eu-west-1", desc)
	require.NoError(t, err)
	assert.Nil(t, got.GSI)
	assert.Nil(t, got.LSI)
	assert.Nil(t, got.Stream)
}

func TestNormalize_Invariants(t *testing.T) {
	t.Run("nil description", func(t *testing.T) {
		_, err := Normalize("us-east-1", nil)
		assert.True(t, ddberr.Is(err, ddberr.KindInternal))
	})
	t.Run("provisioned without throughput", func(t *testing.T) {
		desc := musicTable()
		desc.ProvisionedThroughput = nil
		_, err := Normalize("us-east-1", desc)
		assert.True(t, ddberr.Is(err, ddberr.KindInternal))
	})
	t.Run("missing partition key", func(t *testing.T) {
		desc := musicTable()
		desc.KeySchema = desc.KeySchema[1:]
		_, err := Normalize("us-east-1", desc)
		assert.True(t, ddberr.Is(err, ddberr.KindInternal))
	})
}
