package planner

import (
	"errors"
	"testing"
	"time"
)

func rankNames(t *testing.T, jobs []Job, limit int) []string {
	t.Helper()
	ranked, err := NewRanker(nil).Rank(jobs, limit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	names := make([]string, len(ranked))
	for i, j := range ranked {
		names[i] = j.Name
	}
	return names
}

func TestRank_BucketBeatsPriorityAndDeadline(t *testing.T) {
	jobs := []Job{
		{Name: "DataCo Engineer", Priority: JobPriorityLow, Deadline: NewDate(2025, time.October, 1)},
		{Name: "AI Research Intern", Priority: JobPriorityMid, Deadline: NewDate(2025, time.December, 1)},
	}

	got := rankNames(t, jobs, 2)

	want := []string{"AI Research Intern", "DataCo Engineer"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRank_ResearchLowPriorAboveUnmatchedHighPrior(t *testing.T) {
	jobs := []Job{
		{Name: "Account Manager", Priority: JobPriorityHigh},
		{Name: "Research Scientist", Priority: JobPriorityLow},
	}

	got := rankNames(t, jobs, 2)

	if got[0] != "Research Scientist" {
		t.Errorf("bucket match should outrank priority level, got order %v", got)
	}
}

func TestRank_UnmatchedJobsIncludedLast(t *testing.T) {
	jobs := []Job{
		{Name: "Account Manager", Priority: JobPriorityHigh},
		{Name: "Software Developer", Priority: JobPriorityLow},
	}

	got := rankNames(t, jobs, 10)

	if len(got) != 2 {
		t.Fatalf("unmatched jobs must still be ranked, got %d of 2", len(got))
	}
	if got[0] != "Software Developer" || got[1] != "Account Manager" {
		t.Errorf("unmatched job should sort last, got order %v", got)
	}
}

func TestRank_PriorityBreaksBucketTies(t *testing.T) {
	jobs := []Job{
		{Name: "Backend Engineer", Priority: JobPriorityLow},
		{Name: "Platform Engineer", Priority: JobPriorityHigh},
		{Name: "Infra Engineer", Priority: JobPriorityMid},
	}

	got := rankNames(t, jobs, 3)

	want := []string{"Platform Engineer", "Infra Engineer", "Backend Engineer"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRank_DeadlineOrdering(t *testing.T) {
	t.Run("sooner deadline first", func(t *testing.T) {
		jobs := []Job{
			{Name: "ML Engineer at LateCo", Priority: JobPriorityMid, Deadline: NewDate(2025, time.November, 1)},
			{Name: "ML Engineer at SoonCo", Priority: JobPriorityMid, Deadline: NewDate(2025, time.October, 1)},
		}
		got := rankNames(t, jobs, 2)
		if got[0] != "ML Engineer at SoonCo" {
			t.Errorf("sooner deadline should sort first, got %v", got)
		}
	})

	t.Run("absent deadline sorts after any present deadline", func(t *testing.T) {
		jobs := []Job{
			{Name: "ML Engineer at NoDeadline", Priority: JobPriorityMid},
			{Name: "ML Engineer at FarFuture", Priority: JobPriorityMid, Deadline: NewDate(2030, time.January, 1)},
		}
		got := rankNames(t, jobs, 2)
		if got[0] != "ML Engineer at FarFuture" {
			t.Errorf("present deadline should sort before absent, got %v", got)
		}
	})
}

func TestRank_StableOnFullTies(t *testing.T) {
	jobs := []Job{
		{ID: "1", Name: "Data Engineer A", Priority: JobPriorityMid},
		{ID: "2", Name: "Data Engineer B", Priority: JobPriorityMid},
		{ID: "3", Name: "Data Engineer C", Priority: JobPriorityMid},
	}

	ranked, err := NewRanker(nil).Rank(jobs, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, want := range []string{"1", "2", "3"} {
		if ranked[i].ID != want {
			t.Errorf("position %d: fetch order not preserved on ties, got %q", i, ranked[i].ID)
		}
	}
}

func TestRank_Deterministic(t *testing.T) {
	jobs := []Job{
		{Name: "NLP Researcher", Priority: JobPriorityLow},
		{Name: "Summer Intern", Priority: JobPriorityHigh, Deadline: NewDate(2025, time.September, 20)},
		{Name: "Software Engineer", Priority: JobPriorityMid},
		{Name: "Barista"},
	}

	first := rankNames(t, jobs, 4)
	second := rankNames(t, jobs, 4)

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("ranking not deterministic: %v vs %v", first, second)
		}
	}
}

func TestRank_LimitSemantics(t *testing.T) {
	jobs := []Job{
		{Name: "AI Engineer"},
		{Name: "Research Assistant"},
		{Name: "Software Developer"},
	}

	t.Run("zero limit yields empty", func(t *testing.T) {
		got, err := NewRanker(nil).Rank(jobs, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected empty result for limit 0, got %d jobs", len(got))
		}
	})

	t.Run("negative limit is rejected", func(t *testing.T) {
		_, err := NewRanker(nil).Rank(jobs, -1)
		if !errors.Is(err, ErrNegativeLimit) {
			t.Errorf("expected ErrNegativeLimit, got %v", err)
		}
	})

	t.Run("limit above length returns all", func(t *testing.T) {
		got, err := NewRanker(nil).Rank(jobs, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 3 {
			t.Errorf("expected all 3 jobs, got %d", len(got))
		}
	})

	t.Run("limit truncates", func(t *testing.T) {
		got := rankNames(t, jobs, 2)
		if len(got) != 2 {
			t.Fatalf("expected 2 jobs, got %d", len(got))
		}
		if got[0] != "Research Assistant" {
			t.Errorf("expected research bucket first, got %v", got)
		}
	})
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	jobs := []Job{
		{Name: "Software Developer", Priority: JobPriorityLow},
		{Name: "Research Scientist", Priority: JobPriorityHigh},
	}

	if _, err := NewRanker(nil).Rank(jobs, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if jobs[0].Name != "Software Developer" || jobs[1].Name != "Research Scientist" {
		t.Error("input slice was reordered")
	}
}

func TestBucketIndex_CaseInsensitiveSubstring(t *testing.T) {
	r := NewRanker(nil)

	tests := []struct {
		name string
		want int
	}{
		{"deep RESEARCH role", 0},
		{"machine learning platform", 1},
		{"summer position", 2},
		{"senior developer", 3},
		{"Barista", 4},
	}
	for _, tt := range tests {
		if got := r.BucketIndex(tt.name); got != tt.want {
			t.Errorf("BucketIndex(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestBucketIndex_FirstBucketWins(t *testing.T) {
	// "AI Research Intern" matches research, ai_ml and internship;
	// research is first in bucket order.
	r := NewRanker(nil)
	if got := r.BucketIndex("AI Research Intern"); got != 0 {
		t.Errorf("expected first matching bucket (0), got %d", got)
	}
}

func TestRank_CustomBuckets(t *testing.T) {
	buckets := []KeywordBucket{
		{Name: "design", Keywords: []string{"Designer"}},
		{Name: "writing", Keywords: []string{"Writer"}},
	}
	jobs := []Job{
		{Name: "Technical Writer"},
		{Name: "Product Designer"},
	}

	ranked, err := NewRanker(buckets).Rank(jobs, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ranked[0].Name != "Product Designer" {
		t.Errorf("custom bucket order not honored, got %q first", ranked[0].Name)
	}
}
