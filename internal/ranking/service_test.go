package ranking

import (
	"reflect"
	"testing"
	"time"

	"github.com/campusconnect/discovery-engine/model"
	"github.com/campusconnect/discovery-engine/services"
)

func day(offset int) time.Time {
	return time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func TestScoreWeights(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name    string
		rec     services.RecordView
		profile model.InterestProfile
		want    int
	}{
		{
			name:    "skill tag match",
			rec:     services.RecordView{ID: 1, Title: "Career Fair", Tags: []string{"python"}},
			profile: model.InterestProfile{Skills: []string{"python"}},
			want:    3,
		},
		{
			name:    "preference tag match",
			rec:     services.RecordView{ID: 1, Title: "Career Fair", Tags: []string{"ai"}},
			profile: model.InterestProfile{Preferences: []string{"ai"}},
			want:    5,
		},
		{
			name:    "skill and preference tag matches accumulate",
			rec:     services.RecordView{ID: 1, Title: "Career Fair", Tags: []string{"python", "ai"}},
			profile: model.InterestProfile{Skills: []string{"python"}, Preferences: []string{"ai"}},
			want:    8,
		},
		{
			name:    "title word match",
			rec:     services.RecordView{ID: 1, Title: "Python Workshop"},
			profile: model.InterestProfile{Skills: []string{"python"}},
			want:    2,
		},
		{
			name:    "tag and title match for the same term accumulate",
			rec:     services.RecordView{ID: 1, Title: "Python Workshop", Tags: []string{"python"}},
			profile: model.InterestProfile{Skills: []string{"python"}},
			want:    5,
		},
		{
			name:    "term in both skills and preferences counts once for the title",
			rec:     services.RecordView{ID: 1, Title: "Python Workshop"},
			profile: model.InterestProfile{Skills: []string{"python"}, Preferences: []string{"python"}},
			want:    2,
		},
		{
			name:    "matching is case insensitive",
			rec:     services.RecordView{ID: 1, Title: "PYTHON Workshop", Tags: []string{"Python"}},
			profile: model.InterestProfile{Skills: []string{"  python  "}},
			want:    5,
		},
		{
			name:    "no overlap scores zero",
			rec:     services.RecordView{ID: 1, Title: "Cooking Class", Tags: []string{"food"}},
			profile: model.InterestProfile{Skills: []string{"python"}, Preferences: []string{"ai"}},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Score(tt.rec, tt.profile)
			if got.Score != tt.want {
				t.Errorf("Score = %d, want %d (matches: %v)", got.Score, tt.want, got.Matches)
			}
		})
	}
}

func TestScoreAffinityBonus(t *testing.T) {
	svc := NewService()

	rec := services.RecordView{
		ID:        1,
		Title:     "Career Fair",
		Secondary: &services.SecondaryEntity{Name: "TechCorp", Category: "Technology"},
	}

	t.Run("preference substring of entity name", func(t *testing.T) {
		got := svc.Score(rec, model.InterestProfile{Preferences: []string{"tech"}})
		if got.Score != 2 {
			t.Errorf("Score = %d, want 2", got.Score)
		}
		if !reflect.DeepEqual(got.Matches, []string{"tech"}) {
			t.Errorf("Matches = %v, want [tech]", got.Matches)
		}
	})

	t.Run("bonus applies once per preference", func(t *testing.T) {
		// "tech" appears in both the name and the category; still one bonus.
		got := svc.Score(rec, model.InterestProfile{Preferences: []string{"tech", "data"}})
		if got.Score != 2 {
			t.Errorf("Score = %d, want 2", got.Score)
		}
	})

	t.Run("exact entity category match stacks tag weight and bonus", func(t *testing.T) {
		got := svc.Score(rec, model.InterestProfile{Preferences: []string{"technology"}})
		if got.Score != 7 {
			t.Errorf("Score = %d, want 7 (tag weight plus affinity)", got.Score)
		}
	})

	t.Run("skills earn no affinity bonus", func(t *testing.T) {
		got := svc.Score(rec, model.InterestProfile{Skills: []string{"tech"}})
		if got.Score != 0 {
			t.Errorf("Score = %d, want 0", got.Score)
		}
	})
}

func TestScoreMatchesAreSorted(t *testing.T) {
	svc := NewService()
	rec := services.RecordView{ID: 1, Title: "Zebra Apple Mango", Tags: nil}

	got := svc.Score(rec, model.InterestProfile{Skills: []string{"zebra", "mango", "apple"}})
	want := []string{"apple", "mango", "zebra"}
	if !reflect.DeepEqual(got.Matches, want) {
		t.Errorf("Matches = %v, want %v", got.Matches, want)
	}
}

func TestRankOrdersByScoreThenDate(t *testing.T) {
	svc := NewService()

	records := []services.RecordView{
		{ID: 1, Title: "Career Fair", Tags: []string{"python"}, Date: day(0)},
		{ID: 2, Title: "AI Summit", Tags: []string{"python", "ai"}, Date: day(5)},
	}
	profile := model.InterestProfile{Skills: []string{"python"}, Preferences: []string{"ai"}}

	ranked := svc.Rank(records, profile)
	if len(ranked) != 2 {
		t.Fatalf("Rank returned %d candidates, want 2", len(ranked))
	}
	if ranked[0].ID != 2 || ranked[1].ID != 1 {
		t.Errorf("Rank order = [%d, %d], want [2, 1]", ranked[0].ID, ranked[1].ID)
	}
	if ranked[0].Score != 10 || ranked[1].Score != 3 {
		t.Errorf("Rank scores = [%d, %d], want [10, 3]", ranked[0].Score, ranked[1].Score)
	}
}

func TestRankBreaksTiesByDateAscending(t *testing.T) {
	svc := NewService()

	records := []services.RecordView{
		{ID: 1, Title: "AI Meetup", Date: day(10)},
		{ID: 2, Title: "AI Conference", Date: day(2)},
		{ID: 3, Title: "AI Workshop", Date: day(6)},
	}
	profile := model.InterestProfile{Preferences: []string{"ai"}}

	ranked := svc.Rank(records, profile)
	gotOrder := []int64{ranked[0].ID, ranked[1].ID, ranked[2].ID}
	want := []int64{2, 3, 1}
	if !reflect.DeepEqual(gotOrder, want) {
		t.Errorf("Rank order = %v, want %v (equal scores sort by date)", gotOrder, want)
	}
	for i, c := range ranked {
		if c.Score != 2 {
			t.Errorf("ranked[%d].Score = %d, want 2", i, c.Score)
		}
	}
}

func TestRankEmptyProfileIsChronological(t *testing.T) {
	svc := NewService()

	records := []services.RecordView{
		{ID: 1, Title: "Tech Career Fair", Tags: []string{"technology"}, Date: day(7)},
		{ID: 2, Title: "Tech Networking Night", Tags: []string{"networking"}, Date: day(1)},
		{ID: 3, Title: "Intro to Machine Learning", Tags: []string{"ai"}, Date: day(3)},
	}

	ranked := svc.Rank(records, model.InterestProfile{})
	gotOrder := []int64{ranked[0].ID, ranked[1].ID, ranked[2].ID}
	want := []int64{2, 3, 1}
	if !reflect.DeepEqual(gotOrder, want) {
		t.Errorf("Rank order = %v, want %v (soonest first)", gotOrder, want)
	}
	for i, c := range ranked {
		if c.Score != 0 {
			t.Errorf("ranked[%d].Score = %d, want 0 for empty profile", i, c.Score)
		}
		if c.Matches == nil || len(c.Matches) != 0 {
			t.Errorf("ranked[%d].Matches = %v, want empty", i, c.Matches)
		}
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	svc := NewService()

	records := []services.RecordView{
		{ID: 1, Title: "Late", Date: day(9)},
		{ID: 2, Title: "Early", Date: day(1)},
	}
	svc.Rank(records, model.InterestProfile{})

	if records[0].ID != 1 || records[1].ID != 2 {
		t.Errorf("input slice was reordered: [%d, %d]", records[0].ID, records[1].ID)
	}
}

func TestRankEmptyCandidates(t *testing.T) {
	svc := NewService()

	ranked := svc.Rank(nil, model.InterestProfile{Skills: []string{"python"}})
	if len(ranked) != 0 {
		t.Errorf("Rank(nil) = %v, want empty", ranked)
	}
}
