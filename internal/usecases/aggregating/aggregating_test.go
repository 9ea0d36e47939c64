package aggregating

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type post struct {
	LikeCount *int64
}

func likeCount(p post) *int64 {
	return p.LikeCount
}

func ptr(v int64) *int64 {
	return &v
}

func TestAverageOf(t *testing.T) {
	tests := []struct {
		name  string
		items []post
		want  float64
	}{
		{name: "empty list", items: nil, want: 0},
		{name: "nil excluded from mean", items: []post{{LikeCount: ptr(10)}, {LikeCount: nil}}, want: 10},
		{name: "all nil", items: []post{{}, {}}, want: 0},
		{name: "regular mean", items: []post{{LikeCount: ptr(10)}, {LikeCount: ptr(20)}, {LikeCount: ptr(0)}}, want: 10},
		{name: "non positive sum", items: []post{{LikeCount: ptr(0)}, {LikeCount: ptr(0)}}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AverageOf(tt.items, likeCount))
		})
	}
}

func TestSumOf(t *testing.T) {
	items := []post{{LikeCount: ptr(3)}, {}, {LikeCount: ptr(4)}}
	assert.Equal(t, int64(7), SumOf(items, likeCount))
	assert.Equal(t, int64(0), SumOf([]post{}, likeCount))
}

func TestEngagementRate(t *testing.T) {
	tests := []struct {
		name         string
		total        int64
		postCount    int64
		followerBase int64
		want         float64
	}{
		{name: "no posts", total: 100, postCount: 0, followerBase: 100, want: 0},
		{name: "no followers", total: 100, postCount: 5, followerBase: 0, want: 0},
		{name: "negative followers", total: 100, postCount: 5, followerBase: -1, want: 0},
		{name: "regular", total: 100, postCount: 5, followerBase: 1000, want: 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, EngagementRate(tt.total, tt.postCount, tt.followerBase), 1e-9)
		})
	}
}

func TestTopHashtags(t *testing.T) {
	texts := []string{
		"New drop #Fashion #style!",
		"#fashion again, #ootd",
		"no tags here",
		"#style#fashion",
		"# alone",
	}

	assert.Equal(t, []string{"#fashion", "#style", "#ootd"}, TopHashtags(texts, 10))
	assert.Equal(t, []string{"#fashion"}, TopHashtags(texts, 1))
	assert.Empty(t, TopHashtags(nil, 10))
}
