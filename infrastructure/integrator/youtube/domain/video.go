package youtubedomain

type SearchResult struct {
	ID struct {
		Kind    string `json:"kind"`
		VideoID string `json:"videoId"`
	} `json:"id"`
}

type SearchListResponse struct {
	Items []SearchResult `json:"items"`
}

type VideoStatistics struct {
	ViewCount    string `json:"viewCount"`
	LikeCount    string `json:"likeCount"`
	CommentCount string `json:"commentCount"`
}

type Video struct {
	ID         string          `json:"id"`
	Statistics VideoStatistics `json:"statistics"`
}

type VideoListResponse struct {
	Items []Video `json:"items"`
}
