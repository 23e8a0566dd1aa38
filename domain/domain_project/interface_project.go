package domain_project

import (
	"context"
	"encoding/json"

	"github.com/Super-Badmen-Viper/NineSongProject/domain"
)

type ProjectUsecase interface {
	CreateProject(ctx context.Context, req CreateProjectRequest) (string, error)
	ListProjects(ctx context.Context, order domain.SortOrder) ([]*Project, error)
	GetProject(ctx context.Context, id string) (*Project, error)
	UpdateProject(ctx context.Context, id string, updates map[string]json.RawMessage) (*Project, error)
	DeleteProject(ctx context.Context, id string) (DeleteReport, error)
	GetLyrics(ctx context.Context, id string) (*Lyrics, error)
}

type ProjectMediaUsecase interface {
	GetAudio(ctx context.Context, projectID string) (*MediaBlob, error)
	GetCoverArt(ctx context.Context, projectID string) (*MediaBlob, error)
	GetAudioTags(ctx context.Context, projectID string) (*AudioTags, error)
}
