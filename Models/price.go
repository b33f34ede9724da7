package Models

import (
	"strconv"

	"gorm.io/gorm"
)

type RegionPrice struct {
	gorm.Model
	RegionKey string  `json:"region_key" gorm:"uniqueIndex"`
	Price     float64 `json:"price"`
}

// PriceTable maps a region key to its price. A region absent from the table
// contributes zero to totals.
type PriceTable map[string]float64

// LoadPriceTable reads the full region price mapping. It is fetched once when
// a capture form opens and is not live-updated within a capture session.
func LoadPriceTable(db *gorm.DB) (PriceTable, error) {
	var prices []RegionPrice
	if err := db.Model(&RegionPrice{}).Find(&prices).Error; err != nil {
		return nil, err
	}
	table := make(PriceTable, len(prices))
	for _, price := range prices {
		table[price.RegionKey] = price.Price
	}
	return table, nil
}

// NormalizePrices builds a PriceTable from raw imported values. Entries that
// are not numeric degrade to 0 instead of failing the import.
func NormalizePrices(raw map[string]interface{}) PriceTable {
	table := make(PriceTable, len(raw))
	for key, value := range raw {
		table[key] = coercePrice(value)
	}
	return table
}

func coercePrice(value interface{}) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}
