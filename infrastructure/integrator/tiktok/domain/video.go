package tiktokdomain

type Video struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	VideoDescription string `json:"video_description"`
	CreateTime       int64  `json:"create_time"`
	LikeCount        *int64 `json:"like_count"`
	CommentCount     *int64 `json:"comment_count"`
	ShareCount       *int64 `json:"share_count"`
	ViewCount        *int64 `json:"view_count"`
}

type VideoListRequest struct {
	MaxCount int    `json:"max_count"`
	Cursor   *int64 `json:"cursor,omitempty"`
}

type VideoListResponse struct {
	Data struct {
		Videos  []Video `json:"videos"`
		Cursor  int64   `json:"cursor"`
		HasMore bool    `json:"has_more"`
	} `json:"data"`
	Error APIError `json:"error"`
}
