package domain

import "testing"

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Status
		wantErr bool
	}{
		{name: "upper case", input: "ACTIVE", want: StatusActive},
		{name: "lower case", input: "published", want: StatusPublished},
		{name: "dashed", input: "in-stock", want: StatusInStock},
		{name: "spaced", input: "In Progress", want: StatusInProgress},
		{name: "padded", input: "  draft ", want: StatusDraft},
		{name: "unknown", input: "bogus", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStatus(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseStatus(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStatusIs(t *testing.T) {
	if !Status("active").Is(StatusActive) {
		t.Error(`"active" should match ACTIVE`)
	}
	if !Status("out-of-stock").Is(StatusOutOfStock) {
		t.Error(`"out-of-stock" should match OUT_OF_STOCK`)
	}
	if Status("inactive").Is(StatusActive) {
		t.Error(`"inactive" should not match ACTIVE`)
	}
}

func TestParsePriority(t *testing.T) {
	if p, err := ParsePriority("high"); err != nil || p != PriorityHigh {
		t.Errorf("ParsePriority(high) = %q, %v", p, err)
	}
	if _, err := ParsePriority("critical"); err == nil {
		t.Error("ParsePriority(critical) should fail")
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		input string
		want  Resource
	}{
		{"ads", Ads},
		{"Ad", Ads},
		{"/team-members", TeamMembers},
		{"team_members", TeamMembers},
		{"newsletter", Subscribers},
		{"newsletter_subscribers", Subscribers},
		{"faqs", FAQs},
	}
	for _, tt := range tests {
		got, ok := Lookup(tt.input)
		if !ok || got != tt.want {
			t.Errorf("Lookup(%q) = %+v, %v; want %+v", tt.input, got, ok, tt.want)
		}
	}
	if _, ok := Lookup("bookmarks"); ok {
		t.Error("Lookup(bookmarks) should fail")
	}
}
