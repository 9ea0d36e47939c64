package tiktokdomain

type User struct {
	OpenID         string `json:"open_id"`
	UnionID        string `json:"union_id"`
	DisplayName    string `json:"display_name"`
	Username       string `json:"username"`
	FollowerCount  int64  `json:"follower_count"`
	FollowingCount int64  `json:"following_count"`
	LikesCount     int64  `json:"likes_count"`
	VideoCount     int64  `json:"video_count"`
}

type UserInfoResponse struct {
	Data struct {
		User User `json:"user"`
	} `json:"data"`
	Error APIError `json:"error"`
}
