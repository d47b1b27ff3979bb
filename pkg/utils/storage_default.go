//go:build !android

package utils

// EnsureStorageDir 桌面端和 iOS 上 gdata 会自己创建存储目录
func EnsureStorageDir() error {
	return nil
}

// GetStoragePath 只有 Android 需要手动定位存储目录，其余平台返回空字符串
func GetStoragePath() string {
	return ""
}
