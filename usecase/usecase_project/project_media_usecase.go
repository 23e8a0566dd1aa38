package usecase_project

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Super-Badmen-Viper/NineSongProject/domain"
	"github.com/Super-Badmen-Viper/NineSongProject/domain/domain_project"
	"github.com/dhowden/tag"
	"github.com/h2non/filetype"
	"go.uber.org/zap"
)

type projectMediaUsecase struct {
	kv      domain.KVStore
	blob    domain.BlobStore
	timeout time.Duration
	logger  *zap.Logger
}

func NewProjectMediaUsecase(
	kv domain.KVStore,
	blob domain.BlobStore,
	timeout time.Duration,
	logger *zap.Logger,
) domain_project.ProjectMediaUsecase {
	return &projectMediaUsecase{
		kv:      kv,
		blob:    blob,
		timeout: timeout,
		logger:  logger,
	}
}

func (uc *projectMediaUsecase) GetAudio(ctx context.Context, projectID string) (*domain_project.MediaBlob, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.loadAudioBlob(ctx, projectID)
}

func (uc *projectMediaUsecase) GetCoverArt(ctx context.Context, projectID string) (*domain_project.MediaBlob, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	project, err := uc.loadProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	var audio domain_project.Audio
	if err := getJSON(ctx, uc.kv, domain.AudioKey(project.AudioID), &audio); err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return nil, domain_project.ErrAudioNotFound
		}
		return nil, fmt.Errorf("failed to load audio %s: %w", project.AudioID, err)
	}
	if audio.CoverArt == nil || audio.CoverArt.ID == "" {
		return nil, domain_project.ErrMediaNotFound
	}

	key := audio.CoverArt.BlobKey()
	data, err := uc.readBlob(ctx, key)
	if err != nil {
		return nil, err
	}
	return &domain_project.MediaBlob{Key: key, ContentType: audio.CoverArt.MIME(), Data: data}, nil
}

func (uc *projectMediaUsecase) GetAudioTags(ctx context.Context, projectID string) (*domain_project.AudioTags, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	media, err := uc.loadAudioBlob(ctx, projectID)
	if err != nil {
		return nil, err
	}

	metadata, err := tag.ReadFrom(bytes.NewReader(media.Data))
	if err != nil {
		uc.logger.Warn("标签解析失败", zap.String("key", media.Key), zap.Error(err))
		return nil, fmt.Errorf("%w: %s: %v", domain_project.ErrUnreadableTags, media.Key, err)
	}

	track, trackTotal := metadata.Track()
	disc, discTotal := metadata.Disc()
	return &domain_project.AudioTags{
		Title:       convertToUTF8(metadata.Title()),
		Artist:      convertToUTF8(metadata.Artist()),
		Album:       convertToUTF8(metadata.Album()),
		AlbumArtist: convertToUTF8(metadata.AlbumArtist()),
		Composer:    convertToUTF8(metadata.Composer()),
		Genre:       convertToUTF8(metadata.Genre()),
		Year:        metadata.Year(),
		Track:       track,
		TrackTotal:  trackTotal,
		Disc:        disc,
		DiscTotal:   discTotal,
		Lyrics:      convertToUTF8(metadata.Lyrics()),
		Format:      string(metadata.Format()),
		FileType:    string(metadata.FileType()),
		HasPicture:  metadata.Picture() != nil,
	}, nil
}

func (uc *projectMediaUsecase) loadAudioBlob(ctx context.Context, projectID string) (*domain_project.MediaBlob, error) {
	project, err := uc.loadProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	key := domain_project.AudioBlobKey(project.AudioID)
	data, err := uc.readBlob(ctx, key)
	if err != nil {
		return nil, err
	}

	contentType := domain_project.DefaultAudioMIME
	if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown {
		contentType = kind.MIME.Value
	}
	return &domain_project.MediaBlob{Key: key, ContentType: contentType, Data: data}, nil
}

func (uc *projectMediaUsecase) loadProject(ctx context.Context, id string) (*domain_project.Project, error) {
	var project domain_project.Project
	if err := getJSON(ctx, uc.kv, domain.ProjectKey(id), &project); err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return nil, domain_project.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return &project, nil
}

func (uc *projectMediaUsecase) readBlob(ctx context.Context, key string) ([]byte, error) {
	data, err := uc.blob.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrBlobNotFound) {
			return nil, domain_project.ErrMediaNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}
