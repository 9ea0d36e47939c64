package instagramdomain

type InsightValue struct {
	Value   int64  `json:"value"`
	EndTime string `json:"end_time"`
}

type Insight struct {
	Name   string         `json:"name"`
	Period string         `json:"period"`
	Values []InsightValue `json:"values"`
}

// Total soma os valores diários do insight
func (i Insight) Total() int64 {
	var total int64
	for _, v := range i.Values {
		total += v.Value
	}
	return total
}

type InsightsResponse struct {
	Data []Insight `json:"data"`
}

// Metric retorna o total do insight pelo nome, ou 0 quando ausente
func (r *InsightsResponse) Metric(name string) int64 {
	if r == nil {
		return 0
	}
	for _, insight := range r.Data {
		if insight.Name == name {
			return insight.Total()
		}
	}
	return 0
}
