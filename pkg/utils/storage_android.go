//go:build android

package utils

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// androidDataRoot Android 应用私有目录的根
const androidDataRoot = "/data/data"

// EnsureStorageDir 在打开 gdata 之前创建并检查存档目录
//
// gdata 在 Android 上把数据写到 /data/data/{package}/ 下，但不会预先创建子目录，
// 第一次保存最高分时会因目录不存在而失败。
func EnsureStorageDir() error {
	dir := GetStoragePath()
	if dir == "" {
		return errors.New("cannot detect Android package name")
	}

	savesDir := filepath.Join(dir, "saves")
	if err := os.MkdirAll(savesDir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", savesDir, err)
	}

	probe := filepath.Join(savesDir, ".probe")
	if err := os.WriteFile(probe, nil, 0o644); err != nil {
		return fmt.Errorf("%s is not writable: %w", savesDir, err)
	}
	return os.Remove(probe)
}

// GetStoragePath 应用私有目录，无法识别包名时返回空字符串
func GetStoragePath() string {
	cmdline, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return ""
	}
	// cmdline 以 NUL 分隔，第一段就是包名
	pkg, _, _ := bytes.Cut(cmdline, []byte{0})
	pkg = bytes.TrimSpace(pkg)
	if len(pkg) == 0 {
		return ""
	}
	return filepath.Join(androidDataRoot, string(pkg))
}
