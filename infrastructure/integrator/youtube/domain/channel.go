package youtubedomain

// ChannelStatistics usa strings porque a Data API serializa contadores uint64 como texto
type ChannelStatistics struct {
	ViewCount             string `json:"viewCount"`
	SubscriberCount       string `json:"subscriberCount"`
	HiddenSubscriberCount bool   `json:"hiddenSubscriberCount"`
	VideoCount            string `json:"videoCount"`
}

type Channel struct {
	ID         string            `json:"id"`
	Statistics ChannelStatistics `json:"statistics"`
}

type ChannelListResponse struct {
	Items []Channel `json:"items"`
}
