package domain_project

import (
	"errors"
	"fmt"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrAudioNotFound   = errors.New("audio not found")
	ErrLyricsNotFound  = errors.New("lyrics not found")
	ErrMediaNotFound   = errors.New("media object not found")
	ErrMalformedInput  = errors.New("malformed input")
	ErrUnreadableTags  = errors.New("audio tags unreadable")
)

// 响应体中的纯文本提示
const (
	MsgProjectNotFound = "Project not found"
	MsgAudioNotFound   = "Audio not found"
	MsgLyricsNotFound  = "Lyrics not found"
	MsgMediaNotFound   = "Media not found"
)

// 级联删除步骤
const (
	StepProject     = "project"
	StepAudioRecord = "audioRecord"
	StepAudioBlob   = "audioBlob"
	StepCoverBlob   = "coverBlob"
)

// DeleteReport 记录级联删除中实际完成的步骤
type DeleteReport struct {
	Project     bool `json:"project"`
	AudioRecord bool `json:"audioRecord"`
	AudioBlob   bool `json:"audioBlob"`
	CoverBlob   bool `json:"coverBlob"`
}

// CascadeError 级联删除中途失败，之前完成的步骤不会回滚
type CascadeError struct {
	Step   string
	Report DeleteReport
	Err    error
}

func (e *CascadeError) Error() string {
	return fmt.Sprintf("cascade delete stopped at %s: %v", e.Step, e.Err)
}

func (e *CascadeError) Unwrap() error {
	return e.Err
}
