package domain_project

import "encoding/json"

type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	AudioID     string    `json:"audioId"`
	LyricsID    *string   `json:"lyricsId,omitempty"`
	AssetIDs    *[]string `json:"assetIds,omitempty"`
	CreatedAt   string    `json:"createdAt"`
	UpdatedAt   string    `json:"updatedAt"`

	// Extra 存储记录中的其它键，读写时原样保留
	Extra map[string]json.RawMessage `json:"-"`
}

// projectFields 不带自定义编解码方法，用于读写已知字段
type projectFields Project

var projectKeys = []string{
	"id", "name", "description", "audioId", "lyricsId", "assetIds", "createdAt", "updatedAt",
}

func (p *Project) UnmarshalJSON(data []byte) error {
	var fields projectFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	var extra map[string]json.RawMessage
	if err := json.Unmarshal(data, &extra); err != nil {
		return err
	}
	for _, key := range projectKeys {
		delete(extra, key)
	}
	if len(extra) == 0 {
		extra = nil
	}

	fields.Extra = extra
	*p = Project(fields)
	return nil
}

func (p Project) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(projectFields(p))
	if err != nil || len(p.Extra) == 0 {
		return data, err
	}

	merged := make(map[string]json.RawMessage, len(p.Extra)+len(projectKeys))
	for key, value := range p.Extra {
		merged[key] = value
	}
	// 已知字段覆盖同名的其它键
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	return json.Marshal(merged)
}

type CreateProjectRequest struct {
	Name    string `json:"name"`
	AudioID string `json:"audioId"`
}
