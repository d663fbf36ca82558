package resume

import (
	"fmt"
	"strings"
	"testing"
)

func TestComputeJobMatchEmptyDescription(t *testing.T) {
	rec := Record{Skills: []string{"Go"}}
	for _, jd := range []string{"", "   ", "the and with for"} {
		res := ComputeJobMatch(rec, jd)
		if res.Score != 0 {
			t.Errorf("jd=%q: score = %d, want 0", jd, res.Score)
		}
		if len(res.MatchedKeywords) != 0 || len(res.MissingSkills) != 0 {
			t.Errorf("jd=%q: expected empty keyword lists, got %v / %v", jd, res.MatchedKeywords, res.MissingSkills)
		}
		if len(res.SuggestedEdits) != 1 {
			t.Fatalf("jd=%q: suggested edits = %v, want single guidance message", jd, res.SuggestedEdits)
		}
	}
}

func TestComputeJobMatchScore(t *testing.T) {
	rec := Record{
		Personal: Personal{Summary: "Backend engineer working with golang and postgresql"},
		Skills:   []string{"docker"},
	}
	// golang, postgresql, docker matched; kubernetes missing: 3/4 = 75.
	res := ComputeJobMatch(rec, "golang postgresql docker kubernetes")
	if res.Score != 75 {
		t.Errorf("score = %d, want 75", res.Score)
	}
	if len(res.MatchedKeywords) != 3 {
		t.Errorf("matched = %v, want 3 keywords", res.MatchedKeywords)
	}
	if len(res.MissingSkills) != 1 || res.MissingSkills[0] != "kubernetes" {
		t.Errorf("missing = %v, want [kubernetes]", res.MissingSkills)
	}
	if len(res.SuggestedEdits) != 3 {
		t.Errorf("suggested edits = %d entries, want 3", len(res.SuggestedEdits))
	}
	if !strings.Contains(res.SuggestedEdits[0], "kubernetes") {
		t.Errorf("first suggestion should name the missing keyword: %q", res.SuggestedEdits[0])
	}
}

func TestComputeJobMatchFullCoverage(t *testing.T) {
	rec := Record{Skills: []string{"golang", "docker"}}
	res := ComputeJobMatch(rec, "golang docker")
	if res.Score != 100 {
		t.Errorf("score = %d, want 100", res.Score)
	}
	if len(res.MissingSkills) != 0 {
		t.Errorf("missing = %v, want empty", res.MissingSkills)
	}
	if len(res.SuggestedEdits) != 3 {
		t.Fatalf("suggested edits = %d entries, want 3", len(res.SuggestedEdits))
	}
	if strings.Contains(res.SuggestedEdits[0], "missing") {
		t.Errorf("full coverage should not suggest missing keywords: %q", res.SuggestedEdits[0])
	}
}

func TestComputeJobMatchCaps(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 20; i++ {
		fmt.Fprintf(&sb, "skillword%02d ", i)
	}
	res := ComputeJobMatch(Record{}, sb.String())
	if res.Score != 0 {
		t.Errorf("score = %d, want 0", res.Score)
	}
	if len(res.MissingSkills) != maxMissingSkills {
		t.Errorf("missing = %d entries, want cap %d", len(res.MissingSkills), maxMissingSkills)
	}
	// The suggestion phrase names at most maxSuggestedMissing keywords.
	named := strings.Count(res.SuggestedEdits[0], "skillword")
	if named != maxSuggestedMissing {
		t.Errorf("suggestion names %d keywords, want %d: %q", named, maxSuggestedMissing, res.SuggestedEdits[0])
	}
}

func TestComputeJobMatchKeepsRankingOrder(t *testing.T) {
	res := ComputeJobMatch(Record{}, "zzz2nd zzz2nd aaa1st aaa1st aaa1st bbb3rd")
	want := []string{"aaa1st", "zzz2nd", "bbb3rd"}
	for i, kw := range want {
		if res.MissingSkills[i] != kw {
			t.Fatalf("missing order = %v, want %v", res.MissingSkills, want)
		}
	}
}
