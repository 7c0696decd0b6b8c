package dataprocessing

import "vendascli/pkg/contracts/domain"

// ComputeMetrics reduces filtered sale and cut sets into the process-wide
// summary. TopStoreByRevenue is the store with the strictly greatest summed
// revenue; on a tie the store encountered first wins, which keeps the result
// deterministic for a given input order. SellThroughRate is the stock-based
// ratio, distinct from the cut-based per-variant percentage of MergeDetail.
func ComputeMetrics(sales []domain.SaleRecord, cuts []domain.CutRecord) domain.Metrics {
	var m domain.Metrics

	storeOrder := make([]string, 0)
	storeRevenue := make(map[string]float64)

	for _, s := range sales {
		m.TotalRevenue += s.TotalValue
		m.TotalItemsSold += s.Quantity
		m.TotalStock += s.StockOnHand

		if _, ok := storeRevenue[s.StoreName]; !ok {
			storeOrder = append(storeOrder, s.StoreName)
		}
		storeRevenue[s.StoreName] += s.TotalValue
	}

	for _, c := range cuts {
		m.TotalCut += c.Quantity
	}

	if len(sales) > 0 {
		m.AverageTicket = m.TotalRevenue / float64(len(sales))
	}

	if len(storeOrder) > 0 {
		m.TopStoreByRevenue = storeOrder[0]
		best := storeRevenue[storeOrder[0]]
		for _, store := range storeOrder[1:] {
			if rev := storeRevenue[store]; rev > best {
				best = rev
				m.TopStoreByRevenue = store
			}
		}
	}

	if denom := m.TotalItemsSold + m.TotalStock; denom > 0 {
		m.SellThroughRate = m.TotalItemsSold / denom * 100
	}

	return m
}
