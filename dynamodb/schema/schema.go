// Package schema defines the normalized, printable description of a DynamoDB
// table. Field order in the structs is the order in which the record is
// rendered. The types are plain data; ddbdesc builds them.
package schema

// Mode is the billing mode of a table.
type Mode string

const (
	ModeProvisioned Mode = "Provisioned"
	ModeOnDemand    Mode = "OnDemand"
)

// TableDescription is the normalized view of a DescribeTable result.
// Nullable fields are pointers or slices and render as null when absent.
type TableDescription struct {
	Name   string  `yaml:"name" json:"name"`
	Region string  `yaml:"region" json:"region"`
	Status string  `yaml:"status" json:"status"`
	Schema KeyPair `yaml:"schema" json:"schema"`

	Mode     Mode      `yaml:"mode" json:"mode"`
	Capacity *Capacity `yaml:"capacity" json:"capacity"`

	GSI Indexes `yaml:"gsi" json:"gsi"`
	LSI Indexes `yaml:"lsi" json:"lsi"`

	Stream *string `yaml:"stream" json:"stream"`

	Count     int64  `yaml:"count" json:"count"`
	SizeBytes int64  `yaml:"size_bytes" json:"size_bytes"`
	CreatedAt string `yaml:"created_at" json:"created_at"`
}

// KeyPair holds the rendered partition and sort keys, e.g. "pk (S)".
type KeyPair struct {
	PartitionKey string  `yaml:"pk" json:"pk"`
	SortKey      *string `yaml:"sk" json:"sk"`
}

// Capacity is the provisioned throughput of a table or global index.
type Capacity struct {
	WriteUnits int64 `yaml:"wcu" json:"wcu"`
	ReadUnits  int64 `yaml:"rcu" json:"rcu"`
}

// SecondaryIndex is a global or local secondary index.
type SecondaryIndex struct {
	Name     string    `yaml:"name" json:"name"`
	Schema   KeyPair   `yaml:"schema" json:"schema"`
	Capacity *Capacity `yaml:"capacity" json:"capacity"`
}

// Indexes is an ordered list of secondary indexes. A nil list means the table
// has no index of that kind and renders as null rather than [].
type Indexes []SecondaryIndex

func (ix Indexes) MarshalYAML() (any, error) {
	if ix == nil {
		return nil, nil
	}
	return []SecondaryIndex(ix), nil
}
