package usecase_project

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/Super-Badmen-Viper/NineSongProject/domain/domain_project"
)

const (
	fieldName        = "name"
	fieldDescription = "description"
	fieldAudioID     = "audioId"
	fieldLyricsID    = "lyricsId"
	fieldAssetIDs    = "assetIds"
	fieldLyrics      = "lyrics"
)

type fieldSetter func(p *domain_project.Project, raw json.RawMessage) error

// projectFieldSetters 允许通过更新请求修改的字段；id、createdAt、updatedAt 以及未知字段一律忽略。
// 假值（""、[]、null）同样会覆盖原值。
var projectFieldSetters = map[string]fieldSetter{
	fieldName: func(p *domain_project.Project, raw json.RawMessage) error {
		return decodeString(raw, &p.Name)
	},
	fieldDescription: func(p *domain_project.Project, raw json.RawMessage) error {
		return decodeOptionalString(raw, &p.Description)
	},
	fieldAudioID: func(p *domain_project.Project, raw json.RawMessage) error {
		return decodeString(raw, &p.AudioID)
	},
	fieldLyricsID: func(p *domain_project.Project, raw json.RawMessage) error {
		return decodeOptionalString(raw, &p.LyricsID)
	},
	fieldAssetIDs: func(p *domain_project.Project, raw json.RawMessage) error {
		if isJSONNull(raw) {
			p.AssetIDs = nil
			return nil
		}
		ids := []string{}
		if err := json.Unmarshal(raw, &ids); err != nil {
			return err
		}
		p.AssetIDs = &ids
		return nil
	},
}

// applyProjectPatch 先在副本上应用全部字段，任一字段类型错误时原项目保持不变
func applyProjectPatch(project *domain_project.Project, updates map[string]json.RawMessage) error {
	patched := *project

	for _, field := range slices.Sorted(maps.Keys(updates)) {
		setter, ok := projectFieldSetters[field]
		if !ok {
			continue
		}
		if err := setter(&patched, updates[field]); err != nil {
			return fmt.Errorf("%w: field %s: %v", domain_project.ErrMalformedInput, field, err)
		}
	}

	*project = patched
	return nil
}

func decodeString(raw json.RawMessage, dst *string) error {
	if isJSONNull(raw) {
		*dst = ""
		return nil
	}
	return json.Unmarshal(raw, dst)
}

func decodeOptionalString(raw json.RawMessage, dst **string) error {
	if isJSONNull(raw) {
		*dst = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return err
	}
	*dst = &s
	return nil
}

func isJSONNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
