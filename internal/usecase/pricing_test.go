package usecase

import (
	"reflect"
	"testing"

	"github.com/polkiloo/loyaltycart/internal/domain/model"
)

func silverTier() *model.Tier {
	return &model.Tier{ID: 2, Name: model.TierSilver, Discount: 10, Cashback: 5}
}

func TestPriceSilverTwoItems(t *testing.T) {
	catalog := map[int64]model.Product{
		1: {ID: 1, Name: "A", Modifier: model.ModifierDiscount, Value: 10},
		2: {ID: 2, Name: "B", Modifier: model.ModifierIncreasedCashback, Value: 7},
	}
	items := []model.LineItem{
		{ProductID: 1, Price: 100, Quantity: 2},
		{ProductID: 2, Price: 50, Quantity: 1},
	}

	cart := NewPricingEngine().Price(silverTier(), items, catalog)

	if len(cart.Items) != 2 {
		t.Fatalf("expected 2 priced items, got %d", len(cart.Items))
	}

	a := cart.Items[0]
	if a.DiscountPercent != 20 || a.DiscountValue != 40 || a.FinalPrice != 160 {
		t.Fatalf("unexpected discount item: %+v", a)
	}
	if a.CashbackPercent != 5 || a.CashbackValue != 8 {
		t.Fatalf("unexpected cashback on discount item: %+v", a)
	}

	b := cart.Items[1]
	if b.DiscountPercent != 0 || b.DiscountValue != 0 || b.FinalPrice != 50 {
		t.Fatalf("unexpected cashback item: %+v", b)
	}
	if b.CashbackPercent != 12 || b.CashbackValue != 6 {
		t.Fatalf("unexpected cashback on cashback item: %+v", b)
	}

	if cart.TotalSum != 210 {
		t.Fatalf("expected total sum 210, got %v", cart.TotalSum)
	}
	if cart.TotalDiscount != 40 {
		t.Fatalf("expected total discount 40, got %v", cart.TotalDiscount)
	}
	if cart.TotalCashback != 14 {
		t.Fatalf("expected total cashback 14, got %v", cart.TotalCashback)
	}
	if cart.AllowWriteOff != 210 {
		t.Fatalf("expected allowed write-off 210, got %v", cart.AllowWriteOff)
	}
	// Percents derive from the gross sum 250.
	if cart.DiscountPercent != 16 {
		t.Fatalf("expected discount percent 16, got %v", cart.DiscountPercent)
	}
	if cart.CashbackPercent != 5.6 {
		t.Fatalf("expected cashback percent 5.6, got %v", cart.CashbackPercent)
	}
}

func TestPriceTierTable(t *testing.T) {
	cases := []struct {
		name         string
		tier         model.Tier
		modifier     model.ProductModifier
		value        float64
		wantDiscount float64
		wantCashback float64
	}{
		{"bronze discount", model.Tier{Name: model.TierBronze, Discount: 10, Cashback: 5}, model.ModifierDiscount, 3, 0, 5},
		{"bronze increased cashback", model.Tier{Name: model.TierBronze, Discount: 10, Cashback: 5}, model.ModifierIncreasedCashback, 3, 0, 8},
		{"bronze no loyalty", model.Tier{Name: model.TierBronze, Discount: 10, Cashback: 5}, model.ModifierNoLoyalty, 3, 0, 0},
		{"silver discount", model.Tier{Name: model.TierSilver, Discount: 10, Cashback: 5}, model.ModifierDiscount, 3, 13, 5},
		{"silver increased cashback", model.Tier{Name: model.TierSilver, Discount: 10, Cashback: 5}, model.ModifierIncreasedCashback, 3, 0, 8},
		{"silver no loyalty", model.Tier{Name: model.TierSilver, Discount: 10, Cashback: 5}, model.ModifierNoLoyalty, 3, 0, 0},
		{"gold discount", model.Tier{Name: model.TierGold, Discount: 10, Cashback: 5}, model.ModifierDiscount, 3, 13, 0},
		{"gold increased cashback", model.Tier{Name: model.TierGold, Discount: 10, Cashback: 5}, model.ModifierIncreasedCashback, 3, 0, 0},
		{"gold no loyalty", model.Tier{Name: model.TierGold, Discount: 10, Cashback: 5}, model.ModifierNoLoyalty, 3, 0, 0},
		{"unknown tier discount", model.Tier{Name: "Platinum", Discount: 10, Cashback: 5}, model.ModifierDiscount, 3, 0, 0},
		{"unknown tier increased cashback", model.Tier{Name: "Platinum", Discount: 10, Cashback: 5}, model.ModifierIncreasedCashback, 3, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			catalog := map[int64]model.Product{1: {ID: 1, Modifier: tc.modifier, Value: tc.value}}
			cart := NewPricingEngine().Price(&tc.tier, []model.LineItem{{ProductID: 1, Price: 100, Quantity: 1}}, catalog)
			item := cart.Items[0]
			if item.DiscountPercent != tc.wantDiscount {
				t.Fatalf("discount percent = %v, want %v", item.DiscountPercent, tc.wantDiscount)
			}
			if item.CashbackPercent != tc.wantCashback {
				t.Fatalf("cashback percent = %v, want %v", item.CashbackPercent, tc.wantCashback)
			}
		})
	}
}

func TestPriceNoLoyaltyExclusion(t *testing.T) {
	catalog := map[int64]model.Product{
		1: {ID: 1, Name: "regular", Modifier: model.ModifierDiscount, Value: 5},
		2: {ID: 2, Name: "excluded", Modifier: model.ModifierNoLoyalty},
	}
	items := []model.LineItem{
		{ProductID: 1, Price: 100, Quantity: 1},
		{ProductID: 2, Price: 30, Quantity: 2},
	}

	cart := NewPricingEngine().Price(silverTier(), items, catalog)

	excluded := cart.Items[1]
	if excluded.DiscountValue != 0 || excluded.CashbackValue != 0 {
		t.Fatalf("no_loyalty item must contribute nothing: %+v", excluded)
	}
	if excluded.FinalPrice != 60 {
		t.Fatalf("no_loyalty item keeps its price: %+v", excluded)
	}
	if excluded.Description != "no loyalty" {
		t.Fatalf("unexpected description: %q", excluded.Description)
	}

	// 100 with 15% discount = 85; write-off subtotal excludes the 60.
	if cart.AllowWriteOff != 85 {
		t.Fatalf("expected allowed write-off 85, got %v", cart.AllowWriteOff)
	}
	if cart.TotalSum != 145 {
		t.Fatalf("expected total sum 145, got %v", cart.TotalSum)
	}
}

func TestPriceUnknownProduct(t *testing.T) {
	catalog := map[int64]model.Product{
		1: {ID: 1, Name: "known", Modifier: model.ModifierDiscount, Value: 10},
	}
	items := []model.LineItem{
		{ProductID: 1, Price: 100, Quantity: 1},
		{ProductID: 99, Price: 25, Quantity: 2},
	}

	cart := NewPricingEngine().Price(silverTier(), items, catalog)

	missing := cart.Items[1]
	if missing.Found {
		t.Fatal("expected item to be marked not found")
	}
	if missing.Description != "product not found" {
		t.Fatalf("unexpected description: %q", missing.Description)
	}
	if missing.DiscountValue != 0 || missing.CashbackValue != 0 {
		t.Fatalf("missing product must price with zero loyalty effect: %+v", missing)
	}

	// The known item still prices normally.
	if cart.Items[0].DiscountValue != 20 {
		t.Fatalf("known item must price normally: %+v", cart.Items[0])
	}
	if cart.AllowWriteOff != 80 {
		t.Fatalf("missing product excluded from write-off subtotal, got %v", cart.AllowWriteOff)
	}
	if cart.TotalSum != 130 {
		t.Fatalf("expected total sum 130, got %v", cart.TotalSum)
	}
}

func TestPriceRoundingLaw(t *testing.T) {
	// 9.99 × 3 = 29.97; 13% of it is 3.8961, rounded per item before summing.
	catalog := map[int64]model.Product{
		1: {ID: 1, Modifier: model.ModifierDiscount, Value: 3},
		2: {ID: 2, Modifier: model.ModifierDiscount, Value: 3},
	}
	items := []model.LineItem{
		{ProductID: 1, Price: 9.99, Quantity: 3},
		{ProductID: 2, Price: 9.99, Quantity: 3},
	}

	cart := NewPricingEngine().Price(silverTier(), items, catalog)

	for _, item := range cart.Items {
		if item.DiscountValue != 3.90 {
			t.Fatalf("expected per-item discount 3.90, got %v", item.DiscountValue)
		}
		if item.FinalPrice != 26.07 {
			t.Fatalf("expected per-item final 26.07, got %v", item.FinalPrice)
		}
		if item.CashbackValue != 1.30 {
			t.Fatalf("expected per-item cashback 1.30, got %v", item.CashbackValue)
		}
	}
	if cart.TotalDiscount != 7.80 {
		t.Fatalf("totals must sum rounded values: got %v", cart.TotalDiscount)
	}
	if cart.TotalCashback != 2.60 {
		t.Fatalf("totals must sum rounded values: got %v", cart.TotalCashback)
	}
	if cart.TotalSum != 52.14 {
		t.Fatalf("expected total sum 52.14, got %v", cart.TotalSum)
	}
}

func TestPriceZeroDenominator(t *testing.T) {
	catalog := map[int64]model.Product{1: {ID: 1, Modifier: model.ModifierDiscount, Value: 5}}
	cart := NewPricingEngine().Price(silverTier(), []model.LineItem{{ProductID: 1, Price: 0, Quantity: 1}}, catalog)

	if cart.DiscountPercent != 0 || cart.CashbackPercent != 0 {
		t.Fatalf("free cart must report zero percents: %+v", cart)
	}
}

func TestPriceReferentialTransparency(t *testing.T) {
	catalog := map[int64]model.Product{
		1: {ID: 1, Name: "A", Modifier: model.ModifierDiscount, Value: 10},
		2: {ID: 2, Name: "B", Modifier: model.ModifierIncreasedCashback, Value: 7},
		3: {ID: 3, Name: "C", Modifier: model.ModifierNoLoyalty},
	}
	items := []model.LineItem{
		{ProductID: 1, Price: 19.99, Quantity: 2},
		{ProductID: 2, Price: 5.55, Quantity: 3},
		{ProductID: 3, Price: 7, Quantity: 1},
		{ProductID: 42, Price: 1.5, Quantity: 4},
	}

	engine := NewPricingEngine()
	first := engine.Price(silverTier(), items, catalog)
	second := engine.Price(silverTier(), items, catalog)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("pricing must be deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
