package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/linkwalk/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_TestAndAdd(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	// URL not yet added should return false
	assert.False(t, f.Test("http://example.org/a"))

	assert.False(t, f.TestAndAdd("http://example.org/a"))
	assert.True(t, f.TestAndAdd("http://example.org/a"))
	assert.True(t, f.Test("http://example.org/a"))

	// Different URL should still return false
	assert.False(t, f.Test("http://example.org/b"))
}

func TestFilter_FalsePositiveRate(t *testing.T) {
	t.Parallel()

	const (
		numItems   = 10000
		fpRate     = 0.01
		testProbes = 10000
	)

	f := bloom.NewFilter(numItems, fpRate)

	for i := range numItems {
		f.TestAndAdd(fmt.Sprintf("http://example.org/added/%d", i))
	}

	falsePositives := 0
	for i := range testProbes {
		if f.Test(fmt.Sprintf("http://example.org/notadded/%d", i)) {
			falsePositives++
		}
	}

	// Allow up to 2% to account for statistical variance
	actualRate := float64(falsePositives) / float64(testProbes)
	assert.Less(t, actualRate, 0.02, "false positive rate %f exceeds 2%%", actualRate)
}
