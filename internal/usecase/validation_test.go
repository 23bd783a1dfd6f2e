package usecase

import "testing"

func ptr[T any](v T) *T { return &v }

func TestValidateLineItemsEmpty(t *testing.T) {
	issues := ValidateLineItems(nil)
	if len(issues) != 1 {
		t.Fatalf("expected single issue, got %d", len(issues))
	}
	if issues[0].Code != CodePositionsRequired || issues[0].Field != "positions" {
		t.Fatalf("unexpected issue: %+v", issues[0])
	}
}

func TestValidateLineItemsValid(t *testing.T) {
	items := []LineItemInput{
		{ID: ptr(int64(1)), Price: ptr(10.5), Quantity: ptr(2)},
		{ID: ptr(int64(2)), Price: ptr(0.0), Quantity: ptr(1)},
	}
	if issues := ValidateLineItems(items); len(issues) != 0 {
		t.Fatalf("expected no issues, got %+v", issues)
	}

	converted := ToLineItems(items)
	if len(converted) != 2 || converted[0].ProductID != 1 || converted[1].Quantity != 1 {
		t.Fatalf("unexpected conversion: %+v", converted)
	}
}

func TestValidateLineItemsReportsEveryIssueInOrder(t *testing.T) {
	items := []LineItemInput{
		{ID: nil, Price: ptr(-1.0), Quantity: ptr(2)},
		{ID: ptr(int64(7)), Price: ptr(3.0), Quantity: ptr(0)},
		{ID: ptr(int64(-5)), Price: nil, Quantity: nil},
	}

	issues := ValidateLineItems(items)

	want := []ValidationIssue{
		{Code: CodeFieldRequired, Field: "id", Position: 0},
		{Code: CodeFieldInvalid, Field: "price", Position: 0},
		{Code: CodeFieldInvalid, Field: "quantity", Position: 1, ProductID: 7},
		{Code: CodeFieldInvalid, Field: "id", Position: 2, ProductID: -5},
		{Code: CodeFieldRequired, Field: "price", Position: 2, ProductID: -5},
		{Code: CodeFieldRequired, Field: "quantity", Position: 2, ProductID: -5},
	}

	if len(issues) != len(want) {
		t.Fatalf("expected %d issues, got %d: %+v", len(want), len(issues), issues)
	}
	for i := range want {
		if issues[i] != want[i] {
			t.Fatalf("issue %d = %+v, want %+v", i, issues[i], want[i])
		}
	}
}
