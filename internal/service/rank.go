package service

import (
	"sort"

	"github.com/shopspring/decimal"
)

// competitionRanks ранжирует значения так, что ранг равен числу строго лучших значений плюс один:
// равные значения получают одинаковый ранг, следующий ранг пропускается (1, 2, 2, 4).
func competitionRanks(values []decimal.Decimal, higherIsBetter bool) []int {
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		c := values[order[a]].Cmp(values[order[b]])
		if higherIsBetter {
			return c > 0
		}
		return c < 0
	})

	ranks := make([]int, len(values))
	for pos, i := range order {
		if pos > 0 && values[i].Equal(values[order[pos-1]]) {
			ranks[i] = ranks[order[pos-1]]
			continue
		}
		ranks[i] = pos + 1
	}
	return ranks
}

// nullableRanks ранжирует по возрастанию (меньше - лучше). Отсутствующие значения не считаются
// лучше кого-либо и получают ранг после всех известных значений.
func nullableRanks(values []decimal.NullDecimal) []int {
	known := make([]decimal.Decimal, 0, len(values))
	positions := make([]int, 0, len(values))
	for i, v := range values {
		if v.Valid {
			known = append(known, v.Decimal)
			positions = append(positions, i)
		}
	}

	ranks := make([]int, len(values))
	for i := range ranks {
		ranks[i] = len(known) + 1
	}
	for k, r := range competitionRanks(known, false) {
		ranks[positions[k]] = r
	}
	return ranks
}
