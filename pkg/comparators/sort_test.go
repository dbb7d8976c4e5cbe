package comparators

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/oneconcern/solo/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortCreated(t *testing.T) {
	c, logs := observed()
	docs := []model.Doc{article(int64(100), nil), article(int64(300), nil), article(int64(200), nil)}

	SortStable(c, docs, Created())

	assert.Equal(t, []int64{300, 200, 100}, createdOf(docs))
	assert.True(t, IsSorted(c, docs, Created()))
	assert.Zero(t, logs.Len())
}

func TestSortNonIncreasing(t *testing.T) {
	c, _ := observed()
	rnd := rand.New(rand.NewSource(7))
	docs := make([]model.Doc, 500)
	for i := range docs {
		docs[i] = article(rnd.Int63n(1000), nil) // plenty of ties
	}

	SortStable(c, docs, Created())

	created := createdOf(docs)
	assert.Truef(t, sort.SliceIsSorted(created, func(i, j int) bool { return created[i] > created[j] }),
		"expected a non-increasing sequence, got: %v", created)
}

func TestSortStableOnTies(t *testing.T) {
	c, _ := observed()
	docs := []model.Doc{
		{model.OID: "a", model.ArticleUpdated: 10},
		{model.OID: "b", model.ArticleUpdated: 20},
		{model.OID: "c", model.ArticleUpdated: 10},
		{model.OID: "d", model.ArticleUpdated: 20},
	}

	SortStable(c, docs, Updated())

	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.String(model.OID))
	}
	assert.Equal(t, []string{"b", "d", "a", "c"}, ids)
}

func TestSortTagsWithMalformedRecord(t *testing.T) {
	c, logs := observed()
	malformed := model.Doc{model.TagTitle: "orphan"}
	docs := []model.Doc{malformed, tag(5), tag(3)}

	SortStable(c, docs, ReferenceCount())

	require.Len(t, docs, 3)
	assert.Equal(t, "orphan", docs[0].String(model.TagTitle), "the malformed record keeps its position next to its equal partner")
	n, err := docs[1].Int32(model.TagReferenceCount)
	require.NoError(t, err)
	assert.Equal(t, int32(5), n)
	n, err = docs[2].Int32(model.TagReferenceCount)
	require.NoError(t, err)
	assert.Equal(t, int32(3), n)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "compares tag reference count failed", logs.All()[0].Message)
}

func TestSortDeterministicWithFaults(t *testing.T) {
	build := func() []model.Doc {
		return []model.Doc{tag(1), tag("many"), tag(7), tag(nil), tag(3), tag(7)}
	}
	c, logs := observed()

	first := build()
	SortStable(c, first, ReferenceCount())
	second := build()
	SortStable(c, second, ReferenceCount())

	assert.Equal(t, first, second)
	assert.NotZero(t, logs.Len())
}

func TestFunc(t *testing.T) {
	c := New()
	f := Func[model.Doc](c, Created())
	assert.Equal(t, -1, f(article(int64(2), nil), article(int64(1), nil)))
	assert.Equal(t, 1, f(article(int64(1), nil), article(int64(2), nil)))
	assert.Equal(t, 0, f(article(int64(1), nil), article(nil, nil)))
}
