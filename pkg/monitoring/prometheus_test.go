package monitoring

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordParsedMovesCounters(t *testing.T) {
	// 计数器是进程级的，断言增量而不是绝对值
	ordersBefore := testutil.ToFloat64(ordersParsedTotal.WithLabelValues("etsy"))
	productsBefore := testutil.ToFloat64(productsParsedTotal.WithLabelValues("etsy"))

	RecordParsed("etsy", 5, 3)

	assert.Equal(t, ordersBefore+5, testutil.ToFloat64(ordersParsedTotal.WithLabelValues("etsy")))
	assert.Equal(t, productsBefore+3, testutil.ToFloat64(productsParsedTotal.WithLabelValues("etsy")))
}

func TestRecordCacheCounters(t *testing.T) {
	hitsBefore := testutil.ToFloat64(cacheHitsTotal)
	missesBefore := testutil.ToFloat64(cacheMissesTotal)

	RecordCacheHit()
	RecordCacheHit()
	RecordCacheMiss()

	assert.Equal(t, hitsBefore+2, testutil.ToFloat64(cacheHitsTotal))
	assert.Equal(t, missesBefore+1, testutil.ToFloat64(cacheMissesTotal))
}

func TestRecordListingScored(t *testing.T) {
	before := testutil.ToFloat64(listingsScoredTotal)
	RecordListingScored()
	assert.Equal(t, before+1, testutil.ToFloat64(listingsScoredTotal))
}
