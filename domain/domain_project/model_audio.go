package domain_project

import "strings"

const (
	AudioBlobExt        = "mp3"
	DefaultCoverArtExt  = "jpg"
	DefaultAudioMIME    = "audio/mpeg"
	DefaultCoverArtMIME = "image/jpeg"
)

type CoverArt struct {
	ID     string `json:"id"`
	Format string `json:"format"`
}

// Audio 由音频子系统写入，此处只读
type Audio struct {
	ID       string    `json:"id"`
	CoverArt *CoverArt `json:"coverArt,omitempty"`
}

func AudioBlobKey(audioID string) string {
	return audioID + "." + AudioBlobExt
}

func (c *CoverArt) Ext() string {
	_, subtype, ok := strings.Cut(c.Format, "/")
	if !ok || subtype == "" {
		return DefaultCoverArtExt
	}
	return subtype
}

func (c *CoverArt) BlobKey() string {
	return c.ID + "." + c.Ext()
}

func (c *CoverArt) MIME() string {
	if _, subtype, ok := strings.Cut(c.Format, "/"); ok && subtype != "" {
		return c.Format
	}
	return DefaultCoverArtMIME
}

type AudioTags struct {
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Album       string `json:"album"`
	AlbumArtist string `json:"albumArtist"`
	Composer    string `json:"composer"`
	Genre       string `json:"genre"`
	Year        int    `json:"year"`
	Track       int    `json:"track"`
	TrackTotal  int    `json:"trackTotal"`
	Disc        int    `json:"disc"`
	DiscTotal   int    `json:"discTotal"`
	Lyrics      string `json:"lyrics,omitempty"`
	Format      string `json:"format"`
	FileType    string `json:"fileType"`
	HasPicture  bool   `json:"hasPicture"`
}

// MediaBlob 已读取的媒体对象及其内容类型
type MediaBlob struct {
	Key         string
	ContentType string
	Data        []byte
}
