package stub

import "giftdrift/internal/modules/discovery/domain"

// seedCatalog is the built-in gift list served when no catalog file is
// supplied. Big enough to exercise paging and exclude-seen filtering.
func seedCatalog() []domain.Product {
	return []domain.Product{
		{ID: "g-001", Name: "Cast Iron Skillet", Brand: "Lodge", Price: 29.9, OriginalPrice: 39.9, Currency: "USD", Category: "kitchen", Rating: 4.7, ReviewCount: 88412, Available: true, Featured: true, URL: "https://www.amazon.com/dp/B00006JSUA"},
		{ID: "g-002", Name: "Pour-Over Coffee Set", Brand: "Hario", Price: 42, Currency: "USD", Category: "kitchen", Rating: 4.6, ReviewCount: 12045, Available: true, URL: "https://www.amazon.com/dp/B000P4D5HG"},
		{ID: "g-003", Name: "Noise Cancelling Earbuds", Brand: "Soundcore", Price: 79.99, OriginalPrice: 99.99, Currency: "USD", Category: "gadgets", Rating: 4.4, ReviewCount: 54012, Available: true, Trending: true, URL: "https://www.amazon.com/dp/B09JFPQXZ9"},
		{ID: "g-004", Name: "Mini Projector", Brand: "Anker", Price: 189.99, Currency: "USD", Category: "gadgets", Rating: 4.3, ReviewCount: 8123, Available: true, URL: "https://www.amazon.com/dp/B07VFN9K48"},
		{ID: "g-005", Name: "Weighted Blanket", Brand: "Gravity", Price: 99, OriginalPrice: 129, Currency: "USD", Category: "home", Rating: 4.5, ReviewCount: 22097, Available: true, URL: "https://www.amazon.com/dp/B073429DV2"},
		{ID: "g-006", Name: "Sunset Lamp", Brand: "Glowe", Price: 24.5, Currency: "USD", Category: "home", Rating: 4.2, ReviewCount: 3911, Available: true, New: true, URL: "https://www.amazon.com/dp/B09B1QZVJ3"},
		{ID: "g-007", Name: "Puzzle Board With Drawers", Brand: "Becko", Price: 59.99, Currency: "USD", Category: "games", Rating: 4.8, ReviewCount: 15233, Available: true, URL: "https://www.amazon.com/dp/B08QMXDGLM"},
		{ID: "g-008", Name: "Strategy Board Game", Brand: "Stonemaier", Price: 55, OriginalPrice: 60, Currency: "USD", Category: "games", Rating: 4.9, ReviewCount: 31877, Available: true, Featured: true, URL: "https://www.amazon.com/dp/B01IPUGYK6"},
		{ID: "g-009", Name: "Insulated Travel Mug", Brand: "Zojirushi", Price: 32.99, Currency: "USD", Category: "travel", Rating: 4.8, ReviewCount: 60211, Available: true, URL: "https://www.amazon.com/dp/B00PYMH9WW"},
		{ID: "g-010", Name: "Packing Cube Set", Brand: "Eagle Creek", Price: 44, Currency: "USD", Category: "travel", Rating: 4.6, ReviewCount: 9904, Available: true, URL: "https://www.amazon.com/dp/B00F9S87SG"},
		{ID: "g-011", Name: "Desktop Zen Garden", Brand: "ICNBUYS", Price: 38.5, Currency: "USD", Category: "home", Rating: 4.4, ReviewCount: 2876, Available: true, URL: "https://www.amazon.com/dp/B01N6Q3K6W"},
		{ID: "g-012", Name: "Smart Mug Warmer", Brand: "Ember", Price: 129.95, OriginalPrice: 149.95, Currency: "USD", Category: "gadgets", Rating: 4.1, ReviewCount: 18740, Available: true, Trending: true, URL: "https://www.amazon.com/dp/B07NQRM6ML"},
		{ID: "g-013", Name: "Watercolor Starter Kit", Brand: "Winsor & Newton", Price: 27.8, Currency: "USD", Category: "crafts", Rating: 4.7, ReviewCount: 6540, Available: true, URL: "https://www.amazon.com/dp/B00JPL4504"},
		{ID: "g-014", Name: "Embroidery Kit For Beginners", Brand: "Caydo", Price: 18.99, Currency: "USD", Category: "crafts", Rating: 4.3, ReviewCount: 4421, Available: true, New: true, URL: "https://www.amazon.com/dp/B07X2J8LQM"},
		{ID: "g-015", Name: "Massage Gun", Brand: "Theragun", Price: 199, OriginalPrice: 249, Currency: "USD", Category: "wellness", Rating: 4.6, ReviewCount: 25110, Available: true, URL: "https://www.amazon.com/dp/B086Z2GN7W"},
		{ID: "g-016", Name: "Aromatherapy Diffuser", Brand: "Vitruvi", Price: 123, Currency: "USD", Category: "wellness", Rating: 4.5, ReviewCount: 7712, Available: true, URL: "https://www.amazon.com/dp/B01N9PBBC9"},
		{ID: "g-017", Name: "Polaroid Instant Camera", Brand: "Fujifilm", Price: 76.95, OriginalPrice: 89.95, Currency: "USD", Category: "gadgets", Rating: 4.8, ReviewCount: 90233, Available: true, Featured: true, URL: "https://www.amazon.com/dp/B0C6VY1VXG"},
		{ID: "g-018", Name: "Leather Journal", Brand: "Moleskine", Price: 22.5, Currency: "USD", Category: "stationery", Rating: 4.7, ReviewCount: 41022, Available: true, URL: "https://www.amazon.com/dp/B015NHDUPW"},
		{ID: "g-019", Name: "Fountain Pen Set", Brand: "LAMY", Price: 34.9, Currency: "USD", Category: "stationery", Rating: 4.6, ReviewCount: 17854, Available: true, URL: "https://www.amazon.com/dp/B001BRF6T2"},
		{ID: "g-020", Name: "Indoor Herb Garden", Brand: "AeroGarden", Price: 99.95, OriginalPrice: 129.95, Currency: "USD", Category: "home", Rating: 4.5, ReviewCount: 33410, Available: true, Trending: true, URL: "https://www.amazon.com/dp/B07CKK8Z78"},
	}
}
