package instagramdomain

type Media struct {
	ID            string `json:"id"`
	Caption       string `json:"caption"`
	MediaType     string `json:"media_type"`
	LikeCount     *int64 `json:"like_count"`
	CommentsCount *int64 `json:"comments_count"`
	Timestamp     string `json:"timestamp"`
}

type MediaResponse struct {
	Data []Media `json:"data"`
}
