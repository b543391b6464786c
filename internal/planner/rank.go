package planner

import (
	"errors"
	"sort"
	"strings"
)

// ErrNegativeLimit is returned when the feature job limit is negative.
// A negative limit is a configuration fault and is rejected, not clamped.
var ErrNegativeLimit = errors.New("feature job limit must not be negative")

// KeywordBucket is one ordered group of keywords used as the primary
// ranking key. A job belongs to the first bucket whose keywords match its
// name; matching is case-insensitive substring.
type KeywordBucket struct {
	Name     string
	Keywords []string
}

// DefaultBuckets returns the standard bucket order: research roles first,
// then AI/ML, internships, and general engineering.
func DefaultBuckets() []KeywordBucket {
	return []KeywordBucket{
		{Name: "research", Keywords: []string{"Research", "Researcher", "Research Scientist", "PhD"}},
		{Name: "ai_ml", Keywords: []string{"AI", "Machine Learning", "Deep Learning", "ML Engineer", "AI Engineer", "NLP", "Computer Vision"}},
		{Name: "internship", Keywords: []string{"Internship", "Intern", "Summer"}},
		{Name: "engineer", Keywords: []string{"Engineer", "Developer", "Software"}},
	}
}

// Ranker orders job listings for the feature shortlist. Buckets are
// configuration data passed in at construction; there is no package-level
// default state.
type Ranker struct {
	buckets []KeywordBucket
}

// NewRanker creates a Ranker with the given keyword buckets. Passing no
// buckets falls back to DefaultBuckets.
func NewRanker(buckets []KeywordBucket) *Ranker {
	if len(buckets) == 0 {
		buckets = DefaultBuckets()
	}
	return &Ranker{buckets: buckets}
}

// Rank returns the top limit jobs in lexicographic key order:
//
//  1. keyword bucket (first matching bucket wins; unmatched jobs sort last)
//  2. priority level (High Prior > Mid Prior > Low Prior)
//  3. deadline (present before absent, sooner first)
//  4. original fetch order (stable)
//
// A limit of 0 yields an empty result; fewer matches than limit yields all
// of them. Input jobs are never mutated.
func (r *Ranker) Rank(jobs []Job, limit int) ([]Job, error) {
	if limit < 0 {
		return nil, ErrNegativeLimit
	}
	if limit == 0 || len(jobs) == 0 {
		return nil, nil
	}

	type scored struct {
		job    Job
		bucket int
	}
	ranked := make([]scored, len(jobs))
	for i, j := range jobs {
		ranked[i] = scored{job: j, bucket: r.BucketIndex(j.Name)}
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		if ranked[a].bucket != ranked[b].bucket {
			return ranked[a].bucket < ranked[b].bucket
		}
		pa, pb := jobPriorityRank(ranked[a].job.Priority), jobPriorityRank(ranked[b].job.Priority)
		if pa != pb {
			return pa < pb
		}
		return deadlineBefore(ranked[a].job.Deadline, ranked[b].job.Deadline)
	})

	if limit > len(ranked) {
		limit = len(ranked)
	}
	out := make([]Job, limit)
	for i := range out {
		out[i] = ranked[i].job
	}
	return out, nil
}

// BucketIndex returns the index of the first bucket matching name, or
// len(buckets) when no bucket matches.
func (r *Ranker) BucketIndex(name string) int {
	lower := strings.ToLower(name)
	for i, b := range r.buckets {
		for _, kw := range b.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				return i
			}
		}
	}
	return len(r.buckets)
}

// BucketName returns the matched bucket's name for display, or "" when the
// name matches no bucket.
func (r *Ranker) BucketName(name string) string {
	idx := r.BucketIndex(name)
	if idx >= len(r.buckets) {
		return ""
	}
	return r.buckets[idx].Name
}

func jobPriorityRank(p JobPriority) int {
	switch p {
	case JobPriorityHigh:
		return 0
	case JobPriorityMid:
		return 1
	case JobPriorityLow:
		return 2
	default:
		return 3
	}
}

// deadlineBefore orders present deadlines before absent ones, and sooner
// before later.
func deadlineBefore(a, b Date) bool {
	if a.IsZero() {
		return false
	}
	if b.IsZero() {
		return true
	}
	return a.Before(b)
}
