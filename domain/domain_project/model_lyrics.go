package domain_project

type LyricsLine struct {
	ID        string   `json:"id"`
	Text      string   `json:"text"`
	Timestamp *float64 `json:"timestamp,omitempty"` // 秒
}

type Lyrics struct {
	ID        string       `json:"id"`
	ProjectID string       `json:"projectId"`
	Text      string       `json:"text"`
	Lines     []LyricsLine `json:"lines"`
	CreatedAt string       `json:"createdAt"`
	UpdatedAt string       `json:"updatedAt"`
}

// LyricsPayload 项目更新请求中携带的 lyrics 字段
type LyricsPayload struct {
	Text  *string      `json:"text"`
	Lines []LyricsLine `json:"lines"`
}
