package dataprocessing

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"vendascli/pkg/contracts/domain"
)

// GroupBy buckets sale records by one field, summing the chosen metric plus
// quantity and stock across members. Buckets come back sorted descending by
// value; ties keep first-encountered order (stable sort over insertion
// order), so repeated calls over the same input are deterministic.
func GroupBy(records []domain.SaleRecord, field domain.GroupField, metric domain.MetricField) []domain.AggregatedBucket {
	buckets := make([]domain.AggregatedBucket, 0)
	index := make(map[string]int)

	for _, rec := range records {
		name := field.Of(rec)
		i, ok := index[name]
		if !ok {
			i = len(buckets)
			index[name] = i
			buckets = append(buckets, domain.AggregatedBucket{GroupName: name})
		}
		buckets[i].Value += metric.Of(rec)
		buckets[i].ItemCount += rec.Quantity
		buckets[i].StockTotal += rec.StockOnHand
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Value > buckets[j].Value
	})
	return buckets
}

// canonicalSizeOrder is the fixed garment size ordering: letter sizes first,
// then the standard numeric range.
var canonicalSizeOrder = []string{
	"RN", "PP", "P", "M", "G", "GG", "XG", "XGG", "XXG", "U", "UN", "ÚNICO",
	"34", "36", "38", "40", "42", "44", "46", "48", "50", "52", "54",
}

var sizeRank = func() map[string]int {
	rank := make(map[string]int, len(canonicalSizeOrder))
	for i, s := range canonicalSizeOrder {
		rank[s] = i
	}
	return rank
}()

// SortBySize reorders size-grouped buckets into canonical garment order:
// sizes in the canonical list by list position, then sizes parseable as
// integers ascending, then everything else in locale-aware order. The input
// slice is returned sorted in place.
func SortBySize(buckets []domain.AggregatedBucket) []domain.AggregatedBucket {
	// collate.Numeric keeps digit runs inside odd sizes ("T2", "T10")
	// ordered numerically.
	coll := collate.New(language.BrazilianPortuguese, collate.Numeric)

	sort.SliceStable(buckets, func(i, j int) bool {
		return sizeLess(coll, buckets[i].GroupName, buckets[j].GroupName)
	})
	return buckets
}

// size ordering classes: canonical list, then plain integers, then the rest.
const (
	sizeClassListed = iota
	sizeClassNumeric
	sizeClassOther
)

func sizeClass(s string) (class, rank int) {
	key := strings.ToUpper(strings.TrimSpace(s))
	if r, ok := sizeRank[key]; ok {
		return sizeClassListed, r
	}
	if n, err := strconv.Atoi(key); err == nil {
		return sizeClassNumeric, n
	}
	return sizeClassOther, 0
}

func sizeLess(coll *collate.Collator, a, b string) bool {
	classA, rankA := sizeClass(a)
	classB, rankB := sizeClass(b)
	if classA != classB {
		return classA < classB
	}
	switch classA {
	case sizeClassListed, sizeClassNumeric:
		return rankA < rankB
	}
	return coll.CompareString(a, b) < 0
}
