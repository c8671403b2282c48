package repository

import (
	"kirana-connect/internal/data/entity"

	"github.com/shopspring/decimal"
)

// SeedStores is the demo neighborhood catalog
func SeedStores() []entity.Store {
	return []entity.Store{
		{
			ID:           "s1",
			Name:         "Gupta's Family Kirana",
			Rating:       4.8,
			ReviewCount:  342,
			Distance:     "0.3 km",
			DeliveryTime: "12 mins",
			Image:        "/imageasset/gupta.png",
			Category:     []string{"Flour", "Spices", "Grains", "Groceries"},
			IsBestPrice:  true,
			Type:         entity.StoreTypeRetail,
		},
		{
			ID:           "s2",
			Name:         "Mother Dairy",
			Rating:       4.4,
			ReviewCount:  156,
			Distance:     "0.8 km",
			DeliveryTime: "20 mins",
			Image:        "/imageasset/diary.png",
			Category:     []string{"Dairy", "Ghee", "Paneer"},
			Type:         entity.StoreTypeRetail,
		},
		{
			ID:           "s4",
			Name:         "Mishra's Mithai Vatika",
			Rating:       4.7,
			ReviewCount:  210,
			Distance:     "0.5 km",
			DeliveryTime: "15 mins",
			Image:        "/imageasset/sweet.png",
			Category:     []string{"Sweets", "Snacks", "Ladoos"},
			Type:         entity.StoreTypeRetail,
		},
		{
			ID:           "s6",
			Name:         "Indian Pharmacy",
			Rating:       4.8,
			ReviewCount:  520,
			Distance:     "0.6 km",
			DeliveryTime: "10 mins",
			Image:        "/imageasset/pharmacy.png",
			Category:     []string{"Medicine", "Healthcare", "Wellness"},
			Type:         entity.StoreTypePharmacy,
		},
		{
			ID:           "s7",
			Name:         "Aunty's Homemade Pickles",
			Rating:       4.9,
			ReviewCount:  75,
			Distance:     "0.2 km",
			DeliveryTime: "15 mins",
			Image:        "/imageasset/pickle.png",
			Category:     []string{"Pickles", "Masala", "Home Made"},
			Type:         entity.StoreTypeHomeSeller,
		},
		{
			ID:           "s8",
			Name:         "Bombay Bakery",
			Rating:       4.7,
			ReviewCount:  42,
			Distance:     "1.1 km",
			DeliveryTime: "45 mins",
			Image:        "/imageasset/bakery.png",
			Category:     []string{"Cakes", "Bread", "Cookies"},
			Type:         entity.StoreTypeHomeSeller,
		},
	}
}

// SeedProducts is the demo product catalog, prices in rupees
func SeedProducts() []entity.Product {
	return []entity.Product{
		{
			ID:            "p1",
			Name:          "Ashirwad Atta",
			Brand:         "Gupta's Family Kirana",
			Weight:        "5kg",
			Price:         decimal.NewFromInt(340),
			OriginalPrice: decimal.NewFromInt(380),
			Category:      "Flour",
			Image:         "imageasset/atta.png",
			StoreID:       "s1",
		},
		{
			ID:            "p2",
			Name:          "MDH Garam Masala",
			Brand:         "MDH",
			Weight:        "100g",
			Price:         decimal.NewFromInt(85),
			OriginalPrice: decimal.NewFromInt(95),
			Category:      "Spices",
			Image:         "imageasset/masala.png",
			StoreID:       "s1",
		},
		{
			ID:                   "p4",
			Name:                 "Fresh Malai Paneer",
			Brand:                "Mother Dairy",
			Weight:               "250g",
			Price:                decimal.NewFromInt(95),
			OriginalPrice:        decimal.NewFromInt(110),
			Category:             "Dairy",
			Image:                "imageasset/paneer.png",
			StoreID:              "s2",
			SubscriptionEligible: true,
		},
		{
			ID:            "p5",
			Name:          "Kaju Katli",
			Brand:         "Mishra's Mithai Vatika",
			Weight:        "500g",
			Price:         decimal.NewFromInt(450),
			OriginalPrice: decimal.NewFromInt(500),
			Category:      "Sweets",
			Image:         "imageasset/kaju.png",
			StoreID:       "s4",
		},
		{
			ID:                   "p10",
			Name:                 "Milk",
			Brand:                "Mother Dairy",
			Weight:               "1L",
			Price:                decimal.NewFromInt(68),
			OriginalPrice:        decimal.NewFromInt(72),
			Category:             "Dairy",
			Image:                "imageasset/milk.png",
			StoreID:              "s2",
			SubscriptionEligible: true,
		},
		{
			ID:            "p11",
			Name:          "Vitamin C 500mg",
			Brand:         "HealthGuard",
			Weight:        "30 Tablets",
			Price:         decimal.NewFromInt(180),
			OriginalPrice: decimal.NewFromInt(200),
			Category:      "Healthcare",
			Image:         "imageasset/vitamin.png",
			StoreID:       "s6",
		},
		{
			ID:            "p12",
			Name:          "Mango Pickle",
			Brand:         "Aunty's Homemade Pickles",
			Weight:        "400g",
			Price:         decimal.NewFromInt(220),
			OriginalPrice: decimal.NewFromInt(250),
			Category:      "Pickles",
			Image:         "imageasset/pickle-jar.png",
			StoreID:       "s7",
		},
		{
			ID:            "p13",
			Name:          "Whole Wheat Bread",
			Brand:         "Bombay Bakery",
			Weight:        "400g",
			Price:         decimal.NewFromInt(55),
			OriginalPrice: decimal.NewFromInt(60),
			Category:      "Bread",
			Image:         "imageasset/bread.png",
			StoreID:       "s8",
		},
	}
}
