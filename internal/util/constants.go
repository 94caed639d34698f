package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// 课程资料上传相关常量
const (
	MaxMaterialSize = 50 << 20
)

var (
	AllowedMaterialTypes = []string{"application/pdf", "image/", "video/", "text/plain", "application/zip"}
)
