package store

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestFilterBSON(t *testing.T) {
	f := Where("season", "fall-24").And("slug", "moonrise-over-silk")

	require.Equal(t, bson.D{
		{Key: "season", Value: "fall-24"},
		{Key: "slug", Value: "moonrise-over-silk"},
	}, f.BSON())
}

func TestEmptyFilterMatchesEverything(t *testing.T) {
	f := Filter{}
	require.Equal(t, bson.D{}, f.BSON())
}

func TestAsInt64(t *testing.T) {
	require.Equal(t, int64(5), asInt64(int32(5)))
	require.Equal(t, int64(5), asInt64(int64(5)))
	require.Equal(t, int64(5), asInt64(5))
	require.Equal(t, int64(5), asInt64(float64(5)))
	require.Equal(t, int64(0), asInt64(nil))
	require.Equal(t, int64(0), asInt64("5"))
}
