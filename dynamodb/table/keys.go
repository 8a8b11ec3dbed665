package table

import (
	"fmt"
	"strings"

	"github.com/acksell/dynein/dynamodb/ddberr"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type PrimaryKeyDefinition struct {
	PartitionKey KeyDef
	SortKey      KeyDef // zero value when the table or index has no sort key
}

// HasSortKey reports whether a sort key is defined.
func (k PrimaryKeyDefinition) HasSortKey() bool {
	return k.SortKey.Name != ""
}

// KeyDef is an attribute name together with its scalar type.
type KeyDef struct {
	Name string
	Kind KeyKind
}

// String renders the key as "name (KIND)".
func (k KeyDef) String() string {
	return fmt.Sprintf("%s (%s)", k.Name, k.Kind)
}

type KeyKind string

const (
	KeyKindS KeyKind = "S"
	KeyKindN KeyKind = "N"
	KeyKindB KeyKind = "B"
)

// ParseKeyKind accepts S, N or B in any case.
func ParseKeyKind(s string) (KeyKind, error) {
	switch KeyKind(strings.ToUpper(s)) {
	case KeyKindS:
		return KeyKindS, nil
	case KeyKindN:
		return KeyKindN, nil
	case KeyKindB:
		return KeyKindB, nil
	default:
		return "", fmt.Errorf("unsupported key type %q, must be one of S, N or B", s)
	}
}

// ResolveKey finds the key schema element playing role and pairs it with the
// attribute definition of the same name. The second return value is false if
// either lookup fails.
func ResolveKey(role types.KeyType, ks []types.KeySchemaElement, defs []types.AttributeDefinition) (KeyDef, bool) {
	for _, elem := range ks {
		if elem.KeyType != role {
			continue
		}
		name := aws.ToString(elem.AttributeName)
		for _, def := range defs {
			if aws.ToString(def.AttributeName) == name {
				return KeyDef{Name: name, Kind: KeyKind(def.AttributeType)}, true
			}
		}
		return KeyDef{}, false
	}
	return KeyDef{}, false
}

// ResolvePrimaryKey resolves the HASH and RANGE roles of a key schema.
// Every table and index has a partition key, so failing to resolve one means
// the description is inconsistent. A missing sort key is normal.
func ResolvePrimaryKey(ks []types.KeySchemaElement, defs []types.AttributeDefinition) (PrimaryKeyDefinition, error) {
	pk, ok := ResolveKey(types.KeyTypeHash, ks, defs)
	if !ok {
		return PrimaryKeyDefinition{}, ddberr.Internal("resolve key schema", "partition key is missing from key schema or attribute definitions")
	}
	sk, _ := ResolveKey(types.KeyTypeRange, ks, defs)
	return PrimaryKeyDefinition{PartitionKey: pk, SortKey: sk}, nil
}
