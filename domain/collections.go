package domain

const (
	CollectionKeyValue = "project_kv_entries"
)
const (
	BucketBlobObjects = "project_blob_objects"
)

// 键前缀，格式为 <entity-prefix>:<id>
const (
	KeyPrefixProject = "project:"
	KeyPrefixLyrics  = "lyrics:"
	KeyPrefixAudio   = "audio:"
)

func ProjectKey(id string) string {
	return KeyPrefixProject + id
}

func LyricsKey(id string) string {
	return KeyPrefixLyrics + id
}

func AudioKey(id string) string {
	return KeyPrefixAudio + id
}
