package ddbctl

import "github.com/acksell/dynein/dynamodb/ddberr"

// DefaultRegion is used when neither flags, config nor the AWS environment
// name a region.
const DefaultRegion = "us-east-1"

// Scope is the target of a command: which region and table it acts on and
// how results are printed. It is passed by value to every operation.
type Scope struct {
	// Region and Table come from command-line flags.
	Region string
	Table  string
	// Output is the requested output format; empty means YAML.
	Output string
	// Using is the table remembered by `dy use`.
	Using Using
	// AWSRegion is the region resolved from the AWS environment or profile.
	AWSRegion string
}

// Using identifies the table currently in use.
type Using struct {
	Region string `yaml:"region"`
	Table  string `yaml:"table"`
}

func (s Scope) WithRegion(region string) Scope {
	s.Region = region
	return s
}

func (s Scope) WithTable(table string) Scope {
	s.Table = table
	return s
}

// EffectiveRegion picks the first of: --region, the region in use, the AWS
// environment's region, DefaultRegion.
func (s Scope) EffectiveRegion() string {
	switch {
	case s.Region != "":
		return s.Region
	case s.Using.Region != "":
		return s.Using.Region
	case s.AWSRegion != "":
		return s.AWSRegion
	default:
		return DefaultRegion
	}
}

// EffectiveTable returns --table, or else the table in use.
func (s Scope) EffectiveTable() (string, error) {
	if s.Table != "" {
		return s.Table, nil
	}
	if s.Using.Table != "" {
		return s.Using.Table, nil
	}
	return "", ddberr.User("", "no target table: pass --table or run `dy use TABLE` first")
}

// UsingTableIn returns the table in use if it lives in region.
func (s Scope) UsingTableIn(region string) string {
	if s.Using.Region == region {
		return s.Using.Table
	}
	return ""
}
