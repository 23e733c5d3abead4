package relation

import (
	"math/rand"
	"testing"
)

func barnDoor(id, title string, price float64, tags ...string) Product {
	return Product{
		ID:       id,
		Title:    title,
		Type:     "Barn Doors",
		Tags:     tags,
		Variants: []Variant{{Price: price, InventoryQuantity: 5}},
		Images:   []string{"/images/" + id + ".webp"},
	}
}

func typed(id, productType string, price float64, tags ...string) Product {
	return Product{
		ID:       id,
		Title:    id,
		Type:     productType,
		Tags:     tags,
		Variants: []Variant{{Price: price, InventoryQuantity: 5}},
		Images:   []string{"/images/" + id + ".webp"},
	}
}

func groupTitles(groups []Group) []string {
	titles := make([]string, 0, len(groups))
	for _, group := range groups {
		titles = append(titles, group.Title)
	}
	return titles
}

func containsID(products []Product, id string) bool {
	for _, product := range products {
		if product.ID == id {
			return true
		}
	}
	return false
}

func TestGroupsPriorityOrder(t *testing.T) {
	anchor := barnDoor("anchor", "Rustic Anchor Door", 800, "rustic")
	pool := []Product{
		anchor,
		barnDoor("same-type", "Another Barn Door", 1200),
		typed("shared-tag", "Bypass Doors", 500, "rustic"),
		typed("similar-price", "Closet Shelving", 750),
		typed("hardware-kit", "Hardware", 300),
	}

	engine := NewEngine(8)
	groups := engine.Groups(anchor, pool)

	want := []string{"More Barn Doors", "Similar Style", "Similar Price Range", "Complete Your Project"}
	got := groupTitles(groups)
	if len(got) != len(want) {
		t.Fatalf("expected groups %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected groups %v, got %v", want, got)
		}
	}

	if !containsID(groups[0].Products, "same-type") || len(groups[0].Products) != 1 {
		t.Errorf("same-type group wrong: %+v", groups[0].Products)
	}
	if !containsID(groups[1].Products, "shared-tag") || len(groups[1].Products) != 1 {
		t.Errorf("shared-tag group wrong: %+v", groups[1].Products)
	}
	if !containsID(groups[2].Products, "similar-price") || len(groups[2].Products) != 1 {
		t.Errorf("similar-price group wrong: %+v", groups[2].Products)
	}
	if !containsID(groups[3].Products, "hardware-kit") || len(groups[3].Products) != 1 {
		t.Errorf("complementary group wrong: %+v", groups[3].Products)
	}
}

func TestGroupsExcludeAnchor(t *testing.T) {
	anchor := barnDoor("anchor", "Anchor", 800, "rustic")
	pool := []Product{anchor, barnDoor("other", "Other", 820, "rustic")}

	groups := NewEngine(8).Groups(anchor, pool)
	for _, group := range groups {
		if containsID(group.Products, "anchor") {
			t.Fatalf("anchor appeared in group %q", group.Title)
		}
	}
}

func TestSimilarPriceExcludesEarlierQualifiers(t *testing.T) {
	anchor := barnDoor("anchor", "Anchor", 800, "rustic")
	pool := []Product{
		anchor,
		// Qualifies for same-type: must not appear in similar-price even
		// though its price is in band.
		barnDoor("same-type", "Same Type", 810),
		// Qualifies for shared-tag: also excluded from similar-price.
		typed("shared-tag", "Bypass Doors", 790, "rustic"),
		typed("price-only", "Closet Shelving", 700),
	}

	groups := NewEngine(8).Groups(anchor, pool)

	var similarPrice *Group
	for i := range groups {
		if groups[i].Title == "Similar Price Range" {
			similarPrice = &groups[i]
		}
	}
	if similarPrice == nil {
		t.Fatal("expected a similar-price group")
	}
	if containsID(similarPrice.Products, "same-type") || containsID(similarPrice.Products, "shared-tag") {
		t.Fatalf("earlier qualifiers leaked into similar-price: %+v", similarPrice.Products)
	}
	if !containsID(similarPrice.Products, "price-only") {
		t.Fatalf("expected price-only candidate, got %+v", similarPrice.Products)
	}
}

func TestSimilarPriceRequiresPositiveAnchorPrice(t *testing.T) {
	anchor := Product{ID: "anchor", Type: "Barn Doors"}
	pool := []Product{anchor, typed("candidate", "Closet Shelving", 10)}

	for _, group := range NewEngine(8).Groups(anchor, pool) {
		if group.Title == "Similar Price Range" {
			t.Fatal("similar-price group built for unpriced anchor")
		}
	}
}

func TestPopularFallbackFiresOnlyBelowTwoGroups(t *testing.T) {
	// Anchor type outside the complementary map and with no tags: only the
	// same-type rule can match, so the fallback fires.
	anchor := typed("anchor", "Mirrors", 100)
	pool := []Product{
		anchor,
		typed("same-type", "Mirrors", 5000),
		{ID: "popular-high", Title: "High", Type: "Shelving",
			Variants: []Variant{{Price: 50, InventoryQuantity: 40}},
			Images:   []string{"a.webp", "b.webp"}},
		{ID: "popular-low", Title: "Low", Type: "Shelving",
			Variants: []Variant{{Price: 50, InventoryQuantity: 3}},
			Images:   []string{"a.webp"}},
		{ID: "no-images", Title: "NoImages", Type: "Shelving",
			Variants: []Variant{{Price: 50, InventoryQuantity: 99}}},
		{ID: "unpriced", Title: "Unpriced", Type: "Shelving",
			Variants: []Variant{{Price: 0, InventoryQuantity: 99}},
			Images:   []string{"a.webp"}},
	}

	groups := NewEngine(8).Groups(anchor, pool)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %v", groupTitles(groups))
	}
	popular := groups[1]
	if popular.Title != "Popular Choices" {
		t.Fatalf("expected popular fallback, got %q", popular.Title)
	}
	if containsID(popular.Products, "same-type") {
		t.Error("fallback repeated a product already grouped")
	}
	if containsID(popular.Products, "no-images") || containsID(popular.Products, "unpriced") {
		t.Errorf("unsellable products in fallback: %+v", popular.Products)
	}
	if len(popular.Products) != 2 || popular.Products[0].ID != "popular-high" {
		t.Fatalf("expected popularity ordering, got %+v", popular.Products)
	}
}

func TestPopularFallbackSkippedWithTwoGroups(t *testing.T) {
	anchor := barnDoor("anchor", "Anchor", 800, "rustic")
	pool := []Product{
		anchor,
		barnDoor("same-type", "Same Type", 1200),
		typed("shared-tag", "Bypass Doors", 500, "rustic"),
		{ID: "idle", Title: "Idle", Type: "Mirrors",
			Variants: []Variant{{Price: 50, InventoryQuantity: 99}},
			Images:   []string{"a.webp"}},
	}

	for _, group := range NewEngine(8).Groups(anchor, pool) {
		if group.Title == "Popular Choices" {
			t.Fatal("fallback fired despite two matched groups")
		}
	}
}

func TestGroupsEmptyPool(t *testing.T) {
	anchor := barnDoor("anchor", "Anchor", 800, "rustic")

	if groups := NewEngine(8).Groups(anchor, nil); len(groups) != 0 {
		t.Fatalf("expected no groups, got %v", groupTitles(groups))
	}
	if groups := NewEngine(8).Groups(anchor, []Product{anchor}); len(groups) != 0 {
		t.Fatalf("expected no groups for anchor-only pool, got %v", groupTitles(groups))
	}
}

func TestGroupsRespectLimit(t *testing.T) {
	anchor := barnDoor("anchor", "Anchor", 800)
	pool := []Product{anchor}
	for i := 0; i < 10; i++ {
		pool = append(pool, barnDoor(string(rune('a'+i)), "Door", 800+float64(i)))
	}

	groups := NewEngine(3).Groups(anchor, pool)
	if len(groups) == 0 {
		t.Fatal("expected at least one group")
	}
	for _, group := range groups {
		if len(group.Products) > 3 {
			t.Fatalf("group %q exceeds limit: %d products", group.Title, len(group.Products))
		}
	}
}

func TestShuffledLeavesOriginalGroupIntact(t *testing.T) {
	group := Group{Title: "More Barn Doors", Reason: "Same category"}
	for i := 0; i < 8; i++ {
		group.Products = append(group.Products, barnDoor(string(rune('a'+i)), "Door", 800))
	}

	before := make([]string, len(group.Products))
	for i, product := range group.Products {
		before[i] = product.ID
	}

	shuffled := group.Shuffled(rand.New(rand.NewSource(1)))
	if len(shuffled.Products) != len(group.Products) {
		t.Fatalf("shuffle changed group size: %d", len(shuffled.Products))
	}
	for i, product := range group.Products {
		if product.ID != before[i] {
			t.Fatal("shuffle mutated the original group")
		}
	}

	seen := make(map[string]bool)
	for _, product := range shuffled.Products {
		seen[product.ID] = true
	}
	if len(seen) != len(before) {
		t.Fatal("shuffle dropped or duplicated products")
	}
}

func TestWindowClamping(t *testing.T) {
	group := Group{}
	for i := 0; i < 7; i++ {
		group.Products = append(group.Products, barnDoor(string(rune('a'+i)), "Door", 800))
	}

	if got := len(group.Window(0, 4)); got != 4 {
		t.Errorf("first window: expected 4, got %d", got)
	}
	if got := len(group.Window(4, 4)); got != 3 {
		t.Errorf("final window: expected 3, got %d", got)
	}
	if got := group.Window(10, 4); got != nil {
		t.Errorf("out-of-range window: expected nil, got %v", got)
	}
	if got := group.MaxStart(4); got != 3 {
		t.Errorf("MaxStart: expected 3, got %d", got)
	}
	if got := group.MaxStart(10); got != 0 {
		t.Errorf("MaxStart beyond size: expected 0, got %d", got)
	}
}
