package expense

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildQuery_NilFilter(t *testing.T) {
	assert.Equal(t, bson.M{}, buildQuery(nil))
}

func TestBuildQuery_NoCategory(t *testing.T) {
	query := buildQuery(&ExpenseFilter{DateDesc: true, Skip: 10, Limit: 10})
	assert.Equal(t, bson.M{}, query)
}

func TestBuildQuery_CategoryIsCaseInsensitive(t *testing.T) {
	query := buildQuery(&ExpenseFilter{Category: "food"})

	regex, ok := query["category"].(primitive.Regex)
	assert.True(t, ok)
	assert.Equal(t, "food", regex.Pattern)
	assert.Equal(t, "i", regex.Options)
}

func TestBuildQuery_CategoryMetacharactersAreLiteral(t *testing.T) {
	query := buildQuery(&ExpenseFilter{Category: "food+."})

	regex, ok := query["category"].(primitive.Regex)
	assert.True(t, ok)
	assert.Equal(t, `food\+\.`, regex.Pattern)
	assert.Equal(t, "i", regex.Options)
}

func TestBuildFindOptions_Defaults(t *testing.T) {
	opts := buildFindOptions(&ExpenseFilter{})

	assert.Nil(t, opts.Sort)
	assert.Nil(t, opts.Skip)
	assert.Nil(t, opts.Limit)
}

func TestBuildFindOptions_DateDesc(t *testing.T) {
	opts := buildFindOptions(&ExpenseFilter{DateDesc: true})

	assert.Equal(t, bson.D{{Key: "date", Value: -1}}, opts.Sort)
}

func TestBuildFindOptions_SkipAndLimit(t *testing.T) {
	opts := buildFindOptions(&ExpenseFilter{Skip: 20, Limit: 10})

	assert.NotNil(t, opts.Skip)
	assert.Equal(t, int64(20), *opts.Skip)
	assert.NotNil(t, opts.Limit)
	assert.Equal(t, int64(10), *opts.Limit)
}
