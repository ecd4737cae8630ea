// Package algo has pure ranking and distribution helpers.
package algo

import (
	"sort"

	"github.com/scoutbase/scout/schema"
)

// RankRatings sorts ratings by value in descending order and returns the top
// 'limit' entries. Ties keep ascending player id so repeated calls over
// unchanged data produce identical output. If limit is greater than the
// number of ratings, all ratings are returned in sorted order.
func RankRatings(ratings []schema.PlayerRating, limit int) []schema.PlayerRating {
	sort.SliceStable(ratings, func(i, j int) bool {
		if ratings[i].Value != ratings[j].Value {
			return ratings[i].Value > ratings[j].Value
		}
		return ratings[i].Player.ID < ratings[j].Player.ID
	})
	if limit > 0 && len(ratings) > limit {
		return ratings[:limit]
	}
	return ratings
}

// BinValues buckets values into numBins fixed-width bins over [low, high].
// Values outside the range are clamped into the edge bins so no data point
// is silently dropped. The last bin is closed on both ends.
func BinValues(values []float64, low, high float64, numBins int) []schema.HistogramBin {
	if numBins <= 0 || high <= low {
		return nil
	}
	width := (high - low) / float64(numBins)
	bins := make([]schema.HistogramBin, numBins)
	for i := range bins {
		bins[i].Low = low + float64(i)*width
		bins[i].High = low + float64(i+1)*width
	}
	for _, v := range values {
		idx := int((v - low) / width)
		if idx < 0 {
			idx = 0
		}
		if idx >= numBins {
			idx = numBins - 1
		}
		bins[idx].Count++
	}
	return bins
}
