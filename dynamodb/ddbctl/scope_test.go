package ddbctl

import (
	"testing"

	"github.com/acksell/dynein/dynamodb/ddberr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScope_EffectiveRegion(t *testing.T) {
	tests := []struct {
		name  string
		scope Scope
		want  string
	}{
		{"default", Scope{}, DefaultRegion},
		{"aws environment", Scope{AWSRegion: "eu-west-1"}, "eu-west-1"},
		{"using", Scope{AWSRegion: "eu-west-1", Using: Using{Region: "ap-northeast-1"}}, "ap-northeast-1"},
		{"flag wins", Scope{Region: "us-west-2", AWSRegion: "eu-west-1", Using: Using{Region: "ap-northeast-1"}}, "us-west-2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.scope.EffectiveRegion())
		})
	}
}

func TestScope_EffectiveTable(t *testing.T) {
	_, err := Scope{}.EffectiveTable()
	require.Error(t, err)
	assert.True(t, ddberr.Is(err, ddberr.KindUser))

	sc := Scope{Using: Using{Region: "us-east-1", Table: "Music"}}
	name, err := sc.EffectiveTable()
	require.NoError(t, err)
	assert.Equal(t, "Music", name)

	name, err = sc.WithTable("Orders").EffectiveTable()
	require.NoError(t, err)
	assert.Equal(t, "Orders", name)
	assert.Empty(t, sc.Table, "WithTable must not modify the receiver")
}

func TestScope_UsingTableIn(t *testing.T) {
	sc := Scope{Using: Using{Region: "us-east-1", Table: "Music"}}
	assert.Equal(t, "Music", sc.UsingTableIn("us-east-1"))
	assert.Empty(t, sc.UsingTableIn("eu-west-1"))
}
