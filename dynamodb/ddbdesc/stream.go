package ddbdesc

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ExtractStream folds the latest stream ARN and its view type into
// "arn (VIEW_TYPE)". No ARN means streams are disabled.
func ExtractStream(arn *string, spec *types.StreamSpecification) *string {
	if arn == nil {
		return nil
	}
	// DynamoDB always returns a specification alongside a stream ARN.
	s := fmt.Sprintf("%s (%s)", *arn, spec.StreamViewType)
	return &s
}
