package handlers

import "testing"

func TestParsePaginationDefaults(t *testing.T) {
	page, limit, err := parsePaginationParams("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page != 1 || limit != 10 {
		t.Fatalf("expected defaults 1/10, got %d/%d", page, limit)
	}
}

func TestParsePaginationValues(t *testing.T) {
	page, limit, err := parsePaginationParams("3", "25")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page != 3 || limit != 25 {
		t.Fatalf("expected 3/25, got %d/%d", page, limit)
	}
}

func TestParsePaginationRejectsBadValues(t *testing.T) {
	cases := [][2]string{
		{"0", "10"},
		{"-1", "10"},
		{"abc", "10"},
		{"1", "0"},
		{"1", "xyz"},
	}
	for _, tc := range cases {
		if _, _, err := parsePaginationParams(tc[0], tc[1]); err == nil {
			t.Fatalf("expected error for page=%q limit=%q", tc[0], tc[1])
		}
	}
}
