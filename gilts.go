package giltladder

import "fmt"

// ReferenceGilt identifies a real UK Treasury gilt suitable for a rung.
type ReferenceGilt struct {
	Name         string
	ISIN         string
	MaturityYear int
}

// referenceGilts lists conventional gilts by redemption year. Years
// outside the table fall back to a generic placeholder.
var referenceGilts = map[int]ReferenceGilt{
	2028: {Name: "UK Treasury 1.625% 2028", ISIN: "GB00BFWFPP71", MaturityYear: 2028},
	2029: {Name: "UK Treasury 0.875% 2029", ISIN: "GB00BJMHB534", MaturityYear: 2029},
	2030: {Name: "UK Treasury 0.375% 2030", ISIN: "GB00BKPWFW93", MaturityYear: 2030},
	2031: {Name: "UK Treasury 0.25% 2031", ISIN: "GB00BN65R313", MaturityYear: 2031},
	2032: {Name: "UK Treasury 4.25% 2032", ISIN: "GB00004893086", MaturityYear: 2032},
}

// GiltFor returns the reference gilt redeeming in the given year.
func GiltFor(year int) ReferenceGilt {
	if g, ok := referenceGilts[year]; ok {
		return g
	}
	return ReferenceGilt{
		Name:         fmt.Sprintf("UK Treasury Gilt %d", year),
		ISIN:         "TBD",
		MaturityYear: year,
	}
}

// RecommendGilts suggests one gilt per rung, in rung order.
func RecommendGilts(rungs []Rung) []ReferenceGilt {
	gilts := make([]ReferenceGilt, 0, len(rungs))
	for _, r := range rungs {
		gilts = append(gilts, GiltFor(r.MaturityYear))
	}
	return gilts
}
