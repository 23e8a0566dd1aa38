package usecase_project

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Super-Badmen-Viper/NineSongProject/domain"
	"github.com/Super-Badmen-Viper/NineSongProject/domain/domain_project"
	"github.com/Super-Badmen-Viper/NineSongProject/domain/domain_util"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// cascadeStep 级联删除中的一步，成功后置位 done
type cascadeStep struct {
	name string
	run  func() error
	done *bool
}

type projectUsecase struct {
	kv      domain.KVStore
	blob    domain.BlobStore
	timeout time.Duration
	cascade bool
	logger  *zap.Logger

	now   func() time.Time
	newID func() string
}

// NewProjectUsecase cascade 为 false 时删除只移除项目记录本身
func NewProjectUsecase(
	kv domain.KVStore,
	blob domain.BlobStore,
	timeout time.Duration,
	cascade bool,
	logger *zap.Logger,
) domain_project.ProjectUsecase {
	return &projectUsecase{
		kv:      kv,
		blob:    blob,
		timeout: timeout,
		cascade: cascade,
		logger:  logger,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

func (uc *projectUsecase) CreateProject(ctx context.Context, req domain_project.CreateProjectRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	now := domain_util.ISOTimestamp(uc.now())
	project := &domain_project.Project{
		ID:        uc.newID(),
		Name:      req.Name,
		AudioID:   req.AudioID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := putJSON(ctx, uc.kv, domain.ProjectKey(project.ID), project); err != nil {
		return "", fmt.Errorf("failed to create project: %w", err)
	}
	return project.ID, nil
}

func (uc *projectUsecase) ListProjects(ctx context.Context, order domain.SortOrder) ([]*domain_project.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	keys, err := uc.kv.List(ctx, domain.KeyPrefixProject)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	results := make([]*domain_project.Project, len(keys))
	g, gctx := errgroup.WithContext(ctx)
	for i, key := range keys {
		g.Go(func() error {
			var project domain_project.Project
			err := getJSON(gctx, uc.kv, key, &project)
			switch {
			case errors.Is(err, domain.ErrKeyNotFound):
				// 列举与读取之间被删除
				return nil
			case errors.Is(err, errUndecodable):
				uc.logger.Warn("跳过无法解析的项目记录", zap.String("key", key), zap.Error(err))
				return nil
			case err != nil:
				return err
			}
			results[i] = &project
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}

	projects := make([]*domain_project.Project, 0, len(results))
	for _, p := range results {
		if p != nil {
			projects = append(projects, p)
		}
	}

	if order.Sort == domain.SortByName {
		sortProjectsByName(projects, order.Descending())
	}
	return projects, nil
}

func (uc *projectUsecase) GetProject(ctx context.Context, id string) (*domain_project.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.loadProject(ctx, id)
}

func (uc *projectUsecase) UpdateProject(ctx context.Context, id string, updates map[string]json.RawMessage) (*domain_project.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	project, err := uc.loadProject(ctx, id)
	if err != nil {
		return nil, err
	}

	lyricsRaw, hasLyrics := updates[fieldLyrics]
	if err := applyProjectPatch(project, updates); err != nil {
		return nil, err
	}

	if hasLyrics && !isJSONNull(lyricsRaw) {
		var payload domain_project.LyricsPayload
		if err := json.Unmarshal(lyricsRaw, &payload); err != nil {
			return nil, fmt.Errorf("%w: lyrics: %v", domain_project.ErrMalformedInput, err)
		}
		lyrics, err := uc.createLyrics(ctx, project.ID, payload)
		if err != nil {
			return nil, err
		}
		// 新歌词的 id 不回写到项目的 lyricsId
		uc.logger.Info("歌词记录已创建",
			zap.String("project_id", project.ID),
			zap.String("lyrics_id", lyrics.ID))
	}

	project.UpdatedAt = domain_util.NextTimestamp(project.UpdatedAt, uc.now())
	if err := putJSON(ctx, uc.kv, domain.ProjectKey(project.ID), project); err != nil {
		return nil, fmt.Errorf("failed to save project: %w", err)
	}
	return project, nil
}

func (uc *projectUsecase) createLyrics(ctx context.Context, projectID string, payload domain_project.LyricsPayload) (*domain_project.Lyrics, error) {
	now := domain_util.ISOTimestamp(uc.now())
	lyrics := &domain_project.Lyrics{
		ID:        uc.newID(),
		ProjectID: projectID,
		Lines:     make([]domain_project.LyricsLine, 0, len(payload.Lines)),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if payload.Text != nil {
		lyrics.Text = *payload.Text
	}
	for _, line := range payload.Lines {
		if line.ID == "" {
			line.ID = uc.newID()
		}
		lyrics.Lines = append(lyrics.Lines, line)
	}

	if err := putJSON(ctx, uc.kv, domain.LyricsKey(lyrics.ID), lyrics); err != nil {
		return nil, fmt.Errorf("failed to save lyrics: %w", err)
	}
	return lyrics, nil
}

func (uc *projectUsecase) DeleteProject(ctx context.Context, id string) (domain_project.DeleteReport, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	var report domain_project.DeleteReport

	project, err := uc.loadProject(ctx, id)
	if err != nil {
		return report, err
	}

	if !uc.cascade {
		if err := uc.kv.Delete(ctx, domain.ProjectKey(id)); err != nil {
			return report, fmt.Errorf("failed to delete project: %w", err)
		}
		report.Project = true
		return report, nil
	}

	var audio domain_project.Audio
	if err := getJSON(ctx, uc.kv, domain.AudioKey(project.AudioID), &audio); err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return report, domain_project.ErrAudioNotFound
		}
		return report, fmt.Errorf("failed to load audio %s: %w", project.AudioID, err)
	}

	steps := []cascadeStep{
		{domain_project.StepProject, func() error { return uc.kv.Delete(ctx, domain.ProjectKey(id)) }, &report.Project},
		{domain_project.StepAudioRecord, func() error { return uc.kv.Delete(ctx, domain.AudioKey(project.AudioID)) }, &report.AudioRecord},
		{domain_project.StepAudioBlob, func() error { return uc.blob.Delete(ctx, domain_project.AudioBlobKey(project.AudioID)) }, &report.AudioBlob},
	}
	if audio.CoverArt != nil && audio.CoverArt.ID != "" {
		coverKey := audio.CoverArt.BlobKey()
		steps = append(steps, cascadeStep{
			domain_project.StepCoverBlob, func() error { return uc.blob.Delete(ctx, coverKey) }, &report.CoverBlob,
		})
	}

	for _, step := range steps {
		if err := step.run(); err != nil {
			uc.logger.Error("级联删除中断，已删除的数据不会回滚",
				zap.String("project_id", id),
				zap.String("step", step.name),
				zap.Any("removed", report),
				zap.Error(err))
			return report, &domain_project.CascadeError{Step: step.name, Report: report, Err: err}
		}
		*step.done = true
	}
	return report, nil
}

func (uc *projectUsecase) GetLyrics(ctx context.Context, id string) (*domain_project.Lyrics, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	var lyrics domain_project.Lyrics
	if err := getJSON(ctx, uc.kv, domain.LyricsKey(id), &lyrics); err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return nil, domain_project.ErrLyricsNotFound
		}
		return nil, fmt.Errorf("failed to get lyrics: %w", err)
	}
	return &lyrics, nil
}

func (uc *projectUsecase) loadProject(ctx context.Context, id string) (*domain_project.Project, error) {
	if id == "" {
		return nil, domain_project.ErrProjectNotFound
	}
	var project domain_project.Project
	if err := getJSON(ctx, uc.kv, domain.ProjectKey(id), &project); err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return nil, domain_project.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return &project, nil
}
