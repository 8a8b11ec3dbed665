package ddbdesc

import (
	"github.com/acksell/dynein/dynamodb/schema"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ClassifyMode derives the billing mode from an optional summary.
func ClassifyMode(bs *types.BillingModeSummary) schema.Mode {
	if bs == nil {
		return schema.ModeProvisioned
	}
	if bs.BillingMode == types.BillingModePayPerRequest {
		return schema.ModeOnDemand
	}
	return schema.ModeProvisioned
}

// ExtractCapacity returns the visible capacity for mode. OnDemand never has
// capacity, whatever td holds.
func ExtractCapacity(mode schema.Mode, td *types.ProvisionedThroughputDescription) (*schema.Capacity, error) {
	if mode == schema.ModeOnDemand {
		return nil, nil
	}
	if td == nil {
		return nil, errInvariant("extract capacity", "provisioned throughput is missing on a provisioned table")
	}
	if td.ReadCapacityUnits == nil || td.WriteCapacityUnits == nil {
		return nil, errInvariant("extract capacity", "read or write capacity units are missing on a provisioned table")
	}
	return &schema.Capacity{
		WriteUnits: *td.WriteCapacityUnits,
		ReadUnits:  *td.ReadCapacityUnits,
	}, nil
}
